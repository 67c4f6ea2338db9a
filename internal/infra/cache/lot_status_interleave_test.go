//go:build e2e

package cache

import (
	"context"
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
)

// writeDuringStatusRead runs a write right after the database status read,
// before ListLots gets to fill the cache.
type writeDuringStatusRead struct {
	queries.LotReadStore
	write func()
}

func (r *writeDuringStatusRead) LotStatuses(ctx context.Context, lotIDs []uuid.UUID) (map[uuid.UUID]queries.LotStatus, error) {
	statuses, err := r.LotReadStore.LotStatuses(ctx, lotIDs)
	if r.write != nil {
		write := r.write
		r.write = nil
		write()
	}
	return statuses, err
}

func (s *LotStatusCacheTestSuite) TestBookingBetweenReadAndFillLeavesNoStaleEntry() {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))
	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store, config.NewTestConfig().Booking, metrics.NoopRecorder{})
	reads := memory.NewReadStore(store)
	services := reservation.NewServices(clk, billing.NewHourlyCalculator())
	alloc := commands.NewAllocationCommands(uow, services, s.cache, metrics.NoopRecorder{})
	admin := commands.NewAdminCommands(uow, clk, s.cache)

	l, err := admin.CreateLot(ctx, commands.Actor{UserID: uuid.New(), Role: user.RoleAdmin}, builder.NewLotBuilder().WithSpots(2).Spec())
	s.Require().NoError(err)
	driver, err := builder.NewUserBuilder().WithUsername("driver").WithEmail("driver@example.com").BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, driver)
	}))

	racing := &writeDuringStatusRead{
		LotReadStore: reads,
		write: func() {
			_, err := alloc.Book(ctx, driver.ID(), l.ID(), "MH12AB1234")
			s.Require().NoError(err)
		},
	}
	lots := queries.NewLotQueries(racing, reads, reads, s.cache)

	first, err := lots.ListLots(ctx)
	s.Require().NoError(err)
	s.Require().Len(first, 1)
	s.Equal(2, first[0].AvailableSpots, "the first listing saw the lot before the booking")

	second, err := lots.ListLots(ctx)
	s.Require().NoError(err)
	s.Require().Len(second, 1)
	s.Equal(1, second[0].OccupiedSpots)
	s.Equal(1, second[0].AvailableSpots)
}
