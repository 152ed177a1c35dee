package worker

import (
	"context"
	"fmt"

	"github.com/skyticket/backend/internal/config"
	emailProvider "github.com/skyticket/backend/pkg/email"
)

type emailSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newEmailSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *emailSender {
	return &emailSender{
		sender: sender,
		config: config,
	}
}

type welcomeEmailInput struct {
	FirstName string
}

func (s *emailSender) SendWelcomeEmail(ctx context.Context, email string, firstName string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "به اسکای تیکت خوش آمدید"

	templateInput := welcomeEmailInput{firstName}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.Welcome, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
