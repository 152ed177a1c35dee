package worker

import (
	"context"

	"github.com/skyticket/backend/internal/config"
	emailProvider "github.com/skyticket/backend/pkg/email"
	smsProvider "github.com/skyticket/backend/pkg/sms"
)

type Workers struct {
	SmsSender   SmsSender
	EmailSender EmailSender
}

type Deps struct {
	SMSProvider   smsProvider.Sender
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type SmsSender interface {
	SendOtp(ctx context.Context, phoneNumber string, code int) error
}

type EmailSender interface {
	SendWelcomeEmail(ctx context.Context, email string, firstName string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		SmsSender:   newSmsSender(deps.SMSProvider),
		EmailSender: newEmailSender(deps.EmailProvider, deps.Config.Email),
	}
}
