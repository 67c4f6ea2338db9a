package components

import (
	"context"
	"log/slog"

	"vehicle-parking/internal/infra/cache"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/digest"
	"vehicle-parking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewLotStatusCache,
		NewDigestOutbox,
	),
)

// NewRedisClient returns a nil client when REDIS_URL is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil || client == nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

type LotStatusCacheResult struct {
	fx.Out

	Cache       queries.LotStatusCache
	Invalidator commands.LotStatusInvalidator
}

// NewLotStatusCache falls back to a cache that always misses without Redis.
func NewLotStatusCache(client *redis.Client, cfg config.Config) LotStatusCacheResult {
	if client == nil {
		slog.Info("lot status cache disabled: REDIS_URL is empty")
		noop := cache.NoopLotStatusCache{}
		return LotStatusCacheResult{Cache: noop, Invalidator: noop}
	}
	c := cache.NewLotStatusCache(client, cfg.Redis.LotStatusTTL)
	return LotStatusCacheResult{Cache: c, Invalidator: c}
}

// NewDigestOutbox logs notifications instead of streaming them without Redis.
func NewDigestOutbox(client *redis.Client, cfg config.Config) digest.Outbox {
	if client == nil {
		return cache.NewLogOutbox()
	}
	return cache.NewStreamOutbox(client, cfg.Digest.Stream)
}
