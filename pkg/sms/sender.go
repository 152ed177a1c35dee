package sms

import (
	"context"
	"errors"
	"regexp"
)

var receptorPattern = regexp.MustCompile(`^\+?\d{10,15}$`)

type SendSMSInput struct {
	To      string
	Message string
}

// Sender delivers a text message to a phone number. Delivery is not confirmed.
type Sender interface {
	Send(ctx context.Context, input SendSMSInput) error
}

func (s *SendSMSInput) Validate() error {
	if s.To == "" {
		return errors.New("empty receptor")
	}

	if !receptorPattern.MatchString(s.To) {
		return errors.New("invalid receptor")
	}

	if s.Message == "" {
		return errors.New("empty message")
	}

	return nil
}
