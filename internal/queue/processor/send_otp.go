package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skyticket/backend/internal/queue/task"
	"github.com/skyticket/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type sendOtpProcessor struct {
	workers *worker.Workers
}

func NewSendOtpProcessor(workers *worker.Workers) *sendOtpProcessor {
	return &sendOtpProcessor{
		workers: workers,
	}
}

func (p *sendOtpProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.SendOtp
	if err := json.Unmarshal(t.Payload(), &data); err != nil {
		// A malformed payload will never succeed.
		return fmt.Errorf("process send otp task json unmarshal failed: %v: %w", err, asynq.SkipRetry)
	}

	if err := p.workers.SmsSender.SendOtp(ctx, data.PhoneNumber, data.Code); err != nil {
		return fmt.Errorf("send otp sms failed: %w", err)
	}

	return nil
}
