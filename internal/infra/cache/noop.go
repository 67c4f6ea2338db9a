package cache

import (
	"context"

	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

// NoopLotStatusCache always misses. Used when Redis is not configured.
type NoopLotStatusCache struct{}

func (NoopLotStatusCache) GetMany(context.Context, []uuid.UUID) (*queries.LotStatusLookup, error) {
	return &queries.LotStatusLookup{
		Hits:        map[uuid.UUID]queries.LotStatus{},
		Generations: map[uuid.UUID]int64{},
	}, nil
}

func (NoopLotStatusCache) FillMany(context.Context, map[uuid.UUID]queries.LotStatus, map[uuid.UUID]int64) error {
	return nil
}

func (NoopLotStatusCache) Invalidate(context.Context, ...uuid.UUID) error {
	return nil
}
