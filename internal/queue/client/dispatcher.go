package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/skyticket/backend/internal/queue/task"

	"github.com/hibiken/asynq"
)

var ErrNoClient = errors.New("asynq client is not configured")

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Dispatcher turns notifications into background tasks on the asynq client from ctx,
// falling back to the global one.
type Dispatcher struct {
	enqueuer enqueuer
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) client(ctx context.Context) (enqueuer, error) {
	if d.enqueuer != nil {
		return d.enqueuer, nil
	}

	c := GetClient(ctx)
	if c == nil {
		return nil, ErrNoClient
	}

	return c, nil
}

func (d *Dispatcher) SendOtp(ctx context.Context, phoneNumber string, code int) error {
	t, err := task.NewSendOtpTask(phoneNumber, code)
	if err != nil {
		return fmt.Errorf("create send otp task failed: %w", err)
	}

	return d.enqueue(ctx, t)
}

func (d *Dispatcher) SendWelcome(ctx context.Context, email, firstName string) error {
	t, err := task.NewSendWelcomeEmailTask(email, firstName)
	if err != nil {
		return fmt.Errorf("create send welcome email task failed: %w", err)
	}

	return d.enqueue(ctx, t)
}

func (d *Dispatcher) enqueue(ctx context.Context, t *asynq.Task) error {
	c, err := d.client(ctx)
	if err != nil {
		return err
	}

	if _, err := c.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue %s failed: %w", t.Type(), err)
	}

	return nil
}
