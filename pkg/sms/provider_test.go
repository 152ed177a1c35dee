package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Send(t *testing.T) {
	var gotPath, gotReceptor, gotMessage, gotSender string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		gotReceptor = r.PostForm.Get("receptor")
		gotMessage = r.PostForm.Get("message")
		gotSender = r.PostForm.Get("sender")
		_, _ = w.Write([]byte(`{"return":{"status":200,"message":"ok"},"entries":[]}`))
	}))
	defer srv.Close()

	s := NewHTTPSender(srv.URL+"/", "key123", "10004346", time.Second)
	err := s.Send(context.Background(), SendSMSInput{To: "09120000000", Message: "code: 4821"})
	require.NoError(t, err)

	assert.Equal(t, "/key123/sms/send.json", gotPath)
	assert.Equal(t, "09120000000", gotReceptor)
	assert.Equal(t, "code: 4821", gotMessage)
	assert.Equal(t, "10004346", gotSender)
}

func TestHTTPSender_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"return":{"status":418,"message":"low credit"}}`))
	}))
	defer srv.Close()

	s := NewHTTPSender(srv.URL, "key", "", time.Second)
	err := s.Send(context.Background(), SendSMSInput{To: "09120000000", Message: "code"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low credit")
}

func TestHTTPSender_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	s := NewHTTPSender(srv.URL, "key", "", time.Second)
	err := s.Send(context.Background(), SendSMSInput{To: "09120000000", Message: "code"})
	assert.Error(t, err)
}

func TestHTTPSender_ConnectionErrorHidesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	s := NewHTTPSender(addr, "key-9f3c2a", "", time.Second)
	err := s.Send(context.Background(), SendSMSInput{To: "09120000000", Message: "code"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "key-9f3c2a")
}

func TestHTTPSender_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := NewHTTPSender(srv.URL, "key", "", 5*time.Second)
	err := s.Send(ctx, SendSMSInput{To: "09120000000", Message: "code"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSendSMSInput_Validate(t *testing.T) {
	assert.NoError(t, (&SendSMSInput{To: "+989120000000", Message: "x"}).Validate())
	assert.Error(t, (&SendSMSInput{To: "", Message: "x"}).Validate())
	assert.Error(t, (&SendSMSInput{To: "abc", Message: "x"}).Validate())
	assert.Error(t, (&SendSMSInput{To: "09120000000"}).Validate())
}
