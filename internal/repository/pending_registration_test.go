package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyticket/backend/internal/domain"
)

func TestPendingRegistrationRepository(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := newPendingRegistrationRepository(rdb)
	ctx := context.Background()

	reg := &domain.PendingRegistration{
		PhoneNumber:  "09120000000",
		UserName:     "sara_k",
		Email:        "sara@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}

	require.NoError(t, repo.Save(ctx, "tok", reg, 10*time.Minute))
	assert.True(t, mr.Exists("registration:pending:tok"))
	assert.Equal(t, 10*time.Minute, mr.TTL("registration:pending:tok"))

	got, err := repo.Get(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, reg, got)

	require.NoError(t, repo.Delete(ctx, "tok"))
	_, err = repo.Get(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPendingRegistrationRepository_Expires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := newPendingRegistrationRepository(rdb)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "tok", &domain.PendingRegistration{PhoneNumber: "09120000000"}, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := repo.Get(ctx, "tok")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
