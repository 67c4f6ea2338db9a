//go:build unit

package cache

import (
	"context"
	"testing"

	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopLotStatusCache(t *testing.T) {
	ctx := context.Background()
	var c NoopLotStatusCache
	id := uuid.New()

	require.NoError(t, c.FillMany(ctx, map[uuid.UUID]queries.LotStatus{id: {Available: 1}}, map[uuid.UUID]int64{id: 0}))
	got, err := c.GetMany(ctx, []uuid.UUID{id})
	require.NoError(t, err)
	assert.Empty(t, got.Hits)
	assert.NoError(t, c.Invalidate(ctx, id))
}

func TestLotStatusKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a52-9a0e-4b8e-8d55-1f7f3b1c9d10")
	assert.Equal(t, "lot_status:6f1c2a52-9a0e-4b8e-8d55-1f7f3b1c9d10", lotStatusKey(id))
	assert.Equal(t, "lot_status_gen:6f1c2a52-9a0e-4b8e-8d55-1f7f3b1c9d10", lotGenerationKey(id))
}

func TestNewRedisClient_Disabled(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_BadURL(t *testing.T) {
	_, err := NewRedisClient(context.Background(), config.RedisConfig{URL: "://nope"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse Redis URL")
	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 1, "wrapped error carries a stack trace")
}
