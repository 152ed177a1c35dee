package service

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/skyticket/backend/internal/availability"
	"github.com/skyticket/backend/internal/config"
	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/pkg/auth"
	"github.com/skyticket/backend/pkg/hash"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// plainHasher keeps tests fast; bcrypt is covered in pkg/hash.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hashed, password string) error {
	if hashed != "hashed:"+password {
		return hash.ErrMismatchedPassword
	}
	return nil
}

type fixedOtp int

func (f fixedOtp) Code() int {
	return int(f)
}

type notifierMock struct {
	mock.Mock
}

func (m *notifierMock) SendOtp(ctx context.Context, phoneNumber string, code int) error {
	args := m.Called(ctx, phoneNumber, code)

	return args.Error(0)
}

func (m *notifierMock) SendWelcome(ctx context.Context, email, firstName string) error {
	args := m.Called(ctx, email, firstName)

	return args.Error(0)
}

type availabilityMock struct {
	mock.Mock
}

func (m *availabilityMock) Search(ctx context.Context, airline domain.Airline, q domain.FlightQuery) ([]availability.Flight, error) {
	args := m.Called(ctx, airline, q)

	flights, _ := args.Get(0).([]availability.Flight)
	return flights, args.Error(1)
}

type uploaderMock struct {
	mock.Mock
}

func (m *uploaderMock) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, body)

	return args.String(0), args.Error(1)
}

func (m *uploaderMock) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

func newTokenManager(t *testing.T) *auth.Manager {
	t.Helper()

	manager, err := auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: time.Hour,
		SigningKey:      "test-signing-key",
	})
	require.NoError(t, err)

	return manager
}

func bodyOf(s string) io.Reader {
	return strings.NewReader(s)
}
