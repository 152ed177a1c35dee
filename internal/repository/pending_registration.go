package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skyticket/backend/internal/domain"
)

const pendingRegistrationKeyPrefix = "registration:pending:"

type pendingRegistrationRepository struct {
	rdb redis.UniversalClient
}

func newPendingRegistrationRepository(rdb redis.UniversalClient) *pendingRegistrationRepository {
	return &pendingRegistrationRepository{
		rdb: rdb,
	}
}

func pendingRegistrationKey(token string) string {
	return pendingRegistrationKeyPrefix + token
}

func (r *pendingRegistrationRepository) Save(ctx context.Context, token string, registration *domain.PendingRegistration, ttl time.Duration) error {
	payload, err := json.Marshal(registration)
	if err != nil {
		return fmt.Errorf("marshal pending registration: %w", err)
	}

	if err := r.rdb.Set(ctx, pendingRegistrationKey(token), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set pending registration: %w", err)
	}

	return nil
}

func (r *pendingRegistrationRepository) Get(ctx context.Context, token string) (*domain.PendingRegistration, error) {
	payload, err := r.rdb.Get(ctx, pendingRegistrationKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get pending registration: %w", err)
	}

	var registration domain.PendingRegistration
	if err := json.Unmarshal(payload, &registration); err != nil {
		return nil, fmt.Errorf("unmarshal pending registration: %w", err)
	}

	return &registration, nil
}

func (r *pendingRegistrationRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, pendingRegistrationKey(token)).Err(); err != nil {
		return fmt.Errorf("redis delete pending registration: %w", err)
	}

	return nil
}
