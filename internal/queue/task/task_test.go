package task

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSendOtpTask(t *testing.T) {
	tsk, err := NewSendOtpTask("09120000000", 4821)
	require.NoError(t, err)
	assert.Equal(t, SendOtpTaskName, tsk.Type())

	var data SendOtp
	require.NoError(t, json.Unmarshal(tsk.Payload(), &data))
	assert.Equal(t, SendOtp{PhoneNumber: "09120000000", Code: 4821}, data)
}

func TestNewSendWelcomeEmailTask(t *testing.T) {
	tsk, err := NewSendWelcomeEmailTask("sara@example.com", "Sara")
	require.NoError(t, err)
	assert.Equal(t, SendWelcomeEmailTaskName, tsk.Type())
	assert.JSONEq(t, `{"email":"sara@example.com","first_name":"Sara"}`, string(tsk.Payload()))
}
