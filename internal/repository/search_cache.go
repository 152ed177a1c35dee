package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skyticket/backend/internal/domain"
)

const searchCacheKeyPrefix = "flights:search:"

type searchCacheRepository struct {
	rdb redis.UniversalClient
}

func newSearchCacheRepository(rdb redis.UniversalClient) *searchCacheRepository {
	return &searchCacheRepository{
		rdb: rdb,
	}
}

// searchCacheKey builds a key that is equal for queries differing only in letter case.
func searchCacheKey(q domain.FlightQuery) string {
	return fmt.Sprintf("%s%s:%s:%s:%d:%d:%d",
		searchCacheKeyPrefix,
		strings.ToUpper(strings.TrimSpace(q.Source)),
		strings.ToUpper(strings.TrimSpace(q.Target)),
		q.DepartureDate,
		q.Passengers.Adult,
		q.Passengers.Child,
		q.Passengers.Infant,
	)
}

// Get returns domain.ErrNotFound on a cache miss.
func (r *searchCacheRepository) Get(ctx context.Context, q domain.FlightQuery) (*domain.FlightSearchResult, error) {
	payload, err := r.rdb.Get(ctx, searchCacheKey(q)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("redis get search result: %w", err)
	}

	var result domain.FlightSearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal search result: %w", err)
	}

	return &result, nil
}

func (r *searchCacheRepository) Set(ctx context.Context, q domain.FlightQuery, result *domain.FlightSearchResult, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal search result: %w", err)
	}

	if err := r.rdb.Set(ctx, searchCacheKey(q), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis set search result: %w", err)
	}

	return nil
}
