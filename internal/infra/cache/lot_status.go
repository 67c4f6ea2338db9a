package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lotStatusKeyPrefix     = "lot_status:"
	lotGenerationKeyPrefix = "lot_status_gen:"

	// Generations only need to outlive a single read-then-fill.
	lotGenerationTTL = 24 * time.Hour
)

func lotStatusKey(id uuid.UUID) string {
	return lotStatusKeyPrefix + id.String()
}

func lotGenerationKey(id uuid.UUID) string {
	return lotGenerationKeyPrefix + id.String()
}

// fillScript sets each status only if its lot generation is unchanged.
// KEYS come in (status, generation) pairs; ARGV[1] is the TTL in
// milliseconds followed by (expected generation, payload) per pair.
var fillScript = redis.NewScript(`
local ttl = tonumber(ARGV[1])
local stored = 0
for i = 1, #KEYS, 2 do
  local current = tonumber(redis.call('GET', KEYS[i + 1]) or '0')
  if current == tonumber(ARGV[i + 1]) then
    redis.call('SET', KEYS[i], ARGV[i + 2], 'PX', ttl)
    stored = stored + 1
  end
end
return stored
`)

// LotStatusCache keeps per-lot occupied/available counts. Writers bump the
// lot generation and delete the entry after commit; readers repopulate
// misses from the database through FillMany.
type LotStatusCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewLotStatusCache(client redis.Cmdable, ttl time.Duration) *LotStatusCache {
	return &LotStatusCache{client: client, ttl: ttl}
}

// GetMany reads statuses and generations in one round trip. Undecodable
// entries count as misses.
func (c *LotStatusCache) GetMany(ctx context.Context, lotIDs []uuid.UUID) (*queries.LotStatusLookup, error) {
	lookup := &queries.LotStatusLookup{
		Hits:        make(map[uuid.UUID]queries.LotStatus, len(lotIDs)),
		Generations: make(map[uuid.UUID]int64, len(lotIDs)),
	}
	if len(lotIDs) == 0 {
		return lookup, nil
	}

	n := len(lotIDs)
	keys := make([]string, 2*n)
	for i, id := range lotIDs {
		keys[i] = lotStatusKey(id)
		keys[n+i] = lotGenerationKey(id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errs.Wrap(err, "redis mget failed")
	}

	for i, id := range lotIDs {
		gen, err := parseGeneration(values[n+i])
		if err != nil {
			return nil, errs.Wrap(err, "malformed lot generation")
		}
		lookup.Generations[id] = gen

		raw, ok := values[i].(string)
		if !ok {
			continue
		}
		var status queries.LotStatus
		if err := json.Unmarshal([]byte(raw), &status); err != nil {
			slog.Warn("discarding malformed lot status entry", "key", keys[i], "error", err.Error())
			continue
		}
		lookup.Hits[id] = status
	}
	return lookup, nil
}

func parseGeneration(v any) (int64, error) {
	raw, ok := v.(string)
	if !ok {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

// FillMany stores the statuses whose lot generation still matches. Lots
// missing from generations are skipped.
func (c *LotStatusCache) FillMany(ctx context.Context, statuses map[uuid.UUID]queries.LotStatus, generations map[uuid.UUID]int64) error {
	keys := make([]string, 0, 2*len(statuses))
	args := make([]any, 0, 1+2*len(statuses))
	args = append(args, c.ttl.Milliseconds())

	for id, status := range statuses {
		gen, ok := generations[id]
		if !ok {
			continue
		}
		payload, err := json.Marshal(status)
		if err != nil {
			return errs.Wrap(err, "failed to encode lot status")
		}
		keys = append(keys, lotStatusKey(id), lotGenerationKey(id))
		args = append(args, gen, string(payload))
	}
	if len(keys) == 0 {
		return nil
	}

	if err := fillScript.Run(ctx, c.client, keys, args...).Err(); err != nil {
		return errs.Wrap(err, "failed to cache lot statuses")
	}
	return nil
}

// Invalidate bumps each lot generation and drops the cached status in one
// transaction, so any fill prepared before it is rejected.
func (c *LotStatusCache) Invalidate(ctx context.Context, lotIDs ...uuid.UUID) error {
	if len(lotIDs) == 0 {
		return nil
	}

	pipe := c.client.TxPipeline()
	for _, id := range lotIDs {
		pipe.Incr(ctx, lotGenerationKey(id))
		pipe.Expire(ctx, lotGenerationKey(id), lotGenerationTTL)
		pipe.Del(ctx, lotStatusKey(id))
	}

	_, err := pipe.Exec(ctx)
	if err != nil && !errors.Is(err, redis.Nil) {
		return errs.Wrap(err, "failed to invalidate lot statuses")
	}
	return nil
}
