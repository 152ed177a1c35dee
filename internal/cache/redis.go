package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/skyticket/backend/internal/config"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"

	pingTimeout = 1500 * time.Millisecond
	ioTimeout   = time.Second
)

// NewRedis connects to the Redis deployment selected by cfg.Type. The same client
// backs pending registrations and cached flight searches.
func NewRedis(cfg config.Cache) (redis.UniversalClient, error) {
	var client redis.UniversalClient

	switch cfg.Type {
	case RedisTypeSingle:
		client = redis.NewClient(&redis.Options{
			Addr:            cfg.Redis.Address,
			Password:        cfg.Redis.Password,
			PoolSize:        cfg.Redis.PoolSize,
			ConnMaxIdleTime: 170 * time.Second,
			DialTimeout:     ioTimeout,
			ReadTimeout:     ioTimeout,
			WriteTimeout:    ioTimeout,
		})
	case RedisTypeCluster:
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.RedisCluster.Addresses,
			Password: cfg.RedisCluster.Password,
			// reads go to master nodes only
			RouteRandomly:   false,
			ReadOnly:        false,
			PoolSize:        cfg.RedisCluster.PoolSize,
			ConnMaxLifetime: 15 * time.Minute,
			DialTimeout:     ioTimeout,
			ReadTimeout:     ioTimeout,
			WriteTimeout:    ioTimeout,
		})
	default:
		return nil, fmt.Errorf("unknown redis type %q", cfg.Type)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}
