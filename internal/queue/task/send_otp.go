package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	SendOtpTaskName  = "sendOtpTask"
	SendOtpQueueName = "sendOtpQueue"
)

type SendOtp struct {
	PhoneNumber string `json:"phone_number"`
	Code        int    `json:"code"`
}

func NewSendOtpTask(phoneNumber string, code int) (*asynq.Task, error) {
	data := SendOtp{
		PhoneNumber: phoneNumber,
		Code:        code,
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	// A code is useless once the pending registration expires, so retries stay short.
	return asynq.NewTask(
		SendOtpTaskName,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(SendOtpQueueName),
	), nil
}
