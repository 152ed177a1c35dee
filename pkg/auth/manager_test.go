package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/skyticket/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, accessTTL time.Duration) *Manager {
	t.Helper()
	m, err := NewManager(config.JWTConfig{
		AccessTokenTTL:  accessTTL,
		RefreshTokenTTL: time.Hour,
		SigningKey:      "test-key",
	})
	require.NoError(t, err)
	return m
}

func TestManager_NewJWTAndParse(t *testing.T) {
	m := newTestManager(t, time.Minute)
	userID := uuid.New()

	token, ttl, err := m.NewJWT(userID)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, ttl)

	got, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestManager_ParseExpired(t *testing.T) {
	m := newTestManager(t, -time.Minute)

	token, _, err := m.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestManager_ParseWrongKey(t *testing.T) {
	m := newTestManager(t, time.Minute)
	other, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour, SigningKey: "other"})
	require.NoError(t, err)

	token, _, err := other.NewJWT(uuid.New())
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager(config.JWTConfig{AccessTokenTTL: time.Minute, RefreshTokenTTL: time.Hour})
	assert.Error(t, err)

	_, err = NewManager(config.JWTConfig{SigningKey: "k", RefreshTokenTTL: time.Hour})
	assert.Error(t, err)
}

func TestManager_RefreshToken(t *testing.T) {
	m := newTestManager(t, time.Minute)

	token, ttl, err := m.NewRefreshToken()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	got, err := m.ValidateRefreshToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, token, got)

	_, err = m.ValidateRefreshToken("not-a-uuid")
	assert.Error(t, err)
}
