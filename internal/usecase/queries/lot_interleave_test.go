//go:build unit

package queries_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra/memory"
	"vehicle-parking/internal/infra/metrics"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"
	"vehicle-parking/internal/usecase/shared"
	"vehicle-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// generationCache keeps the same contract as the Redis cache in memory.
type generationCache struct {
	mu          sync.Mutex
	statuses    map[uuid.UUID]queries.LotStatus
	generations map[uuid.UUID]int64
}

func newGenerationCache() *generationCache {
	return &generationCache{
		statuses:    map[uuid.UUID]queries.LotStatus{},
		generations: map[uuid.UUID]int64{},
	}
}

func (c *generationCache) GetMany(_ context.Context, lotIDs []uuid.UUID) (*queries.LotStatusLookup, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lookup := &queries.LotStatusLookup{Hits: map[uuid.UUID]queries.LotStatus{}, Generations: map[uuid.UUID]int64{}}
	for _, id := range lotIDs {
		if s, ok := c.statuses[id]; ok {
			lookup.Hits[id] = s
		}
		lookup.Generations[id] = c.generations[id]
	}
	return lookup, nil
}

func (c *generationCache) FillMany(_ context.Context, statuses map[uuid.UUID]queries.LotStatus, generations map[uuid.UUID]int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, s := range statuses {
		if gen, ok := generations[id]; ok && gen == c.generations[id] {
			c.statuses[id] = s
		}
	}
	return nil
}

func (c *generationCache) Invalidate(_ context.Context, lotIDs ...uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range lotIDs {
		c.generations[id]++
		delete(c.statuses, id)
	}
	return nil
}

type bookAfterStatusRead struct {
	queries.LotReadStore
	book func()
}

func (r *bookAfterStatusRead) LotStatuses(ctx context.Context, lotIDs []uuid.UUID) (map[uuid.UUID]queries.LotStatus, error) {
	statuses, err := r.LotReadStore.LotStatuses(ctx, lotIDs)
	if r.book != nil {
		book := r.book
		r.book = nil
		book()
	}
	return statuses, err
}

func TestListLots_BookingBetweenReadAndFillIsNotCachedStale(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store, config.NewTestConfig().Booking, metrics.NoopRecorder{})
	reads := memory.NewReadStore(store)
	cache := newGenerationCache()
	services := reservation.NewServices(clk, billing.NewHourlyCalculator())
	alloc := commands.NewAllocationCommands(uow, services, cache, metrics.NoopRecorder{})
	admin := commands.NewAdminCommands(uow, clk, cache)

	l, err := admin.CreateLot(ctx, commands.Actor{UserID: uuid.New(), Role: user.RoleAdmin}, builder.NewLotBuilder().WithSpots(2).Spec())
	require.NoError(t, err)
	driver, err := builder.NewUserBuilder().WithUsername("driver").WithEmail("driver@example.com").BuildDomain()
	require.NoError(t, err)
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, driver)
	}))

	racing := &bookAfterStatusRead{
		LotReadStore: reads,
		book: func() {
			_, err := alloc.Book(ctx, driver.ID(), l.ID(), "MH12AB1234")
			require.NoError(t, err)
		},
	}
	lots := queries.NewLotQueries(racing, reads, reads, cache)

	first, err := lots.ListLots(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 2, first[0].AvailableSpots)

	second, err := lots.ListLots(ctx)
	require.NoError(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, second[0].OccupiedSpots)
	require.Equal(t, 1, second[0].AvailableSpots)
}
