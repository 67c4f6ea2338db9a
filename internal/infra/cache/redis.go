// Package cache holds the Redis-backed lot status cache.
package cache

import (
	"context"
	"time"

	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects and pings. It returns nil when no URL is configured.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse Redis URL")
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 2
	opt.PoolTimeout = 4 * time.Second
	opt.ConnMaxIdleTime = 5 * time.Minute

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to ping Redis")
	}
	return client, nil
}
