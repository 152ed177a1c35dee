package worker

import (
	"context"
	"fmt"

	smsProvider "github.com/skyticket/backend/pkg/sms"
)

const otpMessageFormat = "کد تایید شما در اسکای تیکت: %d"

type smsSender struct {
	sender smsProvider.Sender
}

func newSmsSender(sender smsProvider.Sender) *smsSender {
	return &smsSender{
		sender: sender,
	}
}

func (s *smsSender) SendOtp(ctx context.Context, phoneNumber string, code int) error {
	input := smsProvider.SendSMSInput{
		To:      phoneNumber,
		Message: fmt.Sprintf(otpMessageFormat, code),
	}

	if err := input.Validate(); err != nil {
		return fmt.Errorf("invalid sms input: %w", err)
	}

	if err := s.sender.Send(ctx, input); err != nil {
		return fmt.Errorf("send sms failed: %w", err)
	}

	return nil
}
