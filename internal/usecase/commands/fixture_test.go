//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra/memory"
	"vehicle-parking/internal/infra/metrics"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/shared"
	"vehicle-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type outcomeSpy struct {
	mu       sync.Mutex
	bookings []string
	releases []string
}

func (s *outcomeSpy) ObserveBooking(outcome string, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = append(s.bookings, outcome)
}

func (s *outcomeSpy) ObserveRelease(outcome string, _ decimal.Decimal, _ time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases = append(s.releases, outcome)
}

type invalidationSpy struct {
	mu   sync.Mutex
	lots []uuid.UUID
}

func (s *invalidationSpy) Invalidate(_ context.Context, lotIDs ...uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lots = append(s.lots, lotIDs...)
	return nil
}

// fixture wires the commands to the in-memory backend.
type fixture struct {
	t        *testing.T
	ctx      context.Context
	clock    *clock.MockClock
	store    *memory.Store
	uow      *memory.UnitOfWork
	reads    *memory.ReadStore
	recorder *outcomeSpy
	cache    *invalidationSpy
	alloc    commands.AllocationCommands
	admin    commands.AdminCommands
	root     commands.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clk := clock.NewMockClock(start)
	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store, config.NewTestConfig().Booking, metrics.NoopRecorder{})
	recorder := &outcomeSpy{}
	cache := &invalidationSpy{}
	services := reservation.NewServices(clk, billing.NewHourlyCalculator())

	return &fixture{
		t:        t,
		ctx:      context.Background(),
		clock:    clk,
		store:    store,
		uow:      uow,
		reads:    memory.NewReadStore(store),
		recorder: recorder,
		cache:    cache,
		alloc:    commands.NewAllocationCommands(uow, services, cache, recorder),
		admin:    commands.NewAdminCommands(uow, clk, cache),
		root:     commands.Actor{UserID: uuid.New(), Role: user.RoleAdmin},
	}
}

func (f *fixture) seedUser(username string) uuid.UUID {
	f.t.Helper()
	u, err := builder.NewUserBuilder().
		WithUsername(username).
		WithEmail(username + "@example.com").
		BuildDomain()
	require.NoError(f.t, err)
	require.NoError(f.t, f.uow.Within(f.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	}))
	return u.ID()
}

func (f *fixture) seedLot(b *builder.LotBuilder) uuid.UUID {
	f.t.Helper()
	l, err := f.admin.CreateLot(f.ctx, f.root, b.Spec())
	require.NoError(f.t, err)
	return l.ID()
}

// assertLedgerConsistent checks that every lot has exactly as many
// Occupied spots as active reservations, and that no user holds two.
func (f *fixture) assertLedgerConsistent() {
	f.t.Helper()
	snap, err := f.reads.AdminSnapshot(f.ctx)
	require.NoError(f.t, err)

	occupied := map[uuid.UUID]int{}
	for _, s := range snap.Spots {
		if s.Status == spot.StatusOccupied {
			occupied[s.LotID]++
		}
	}
	active := map[uuid.UUID]int{}
	perUser := map[uuid.UUID]int{}
	for _, r := range snap.Reservations {
		if r.Status == reservation.StatusActive {
			active[r.LotID]++
			perUser[r.UserID]++
		}
	}

	require.Equal(f.t, occupied, active, "occupied spots must match active reservations")
	for userID, n := range perUser {
		require.LessOrEqual(f.t, n, 1, "user %s has %d active reservations", userID, n)
	}

	ids := make([]uuid.UUID, len(snap.Lots))
	for i, l := range snap.Lots {
		ids[i] = l.ID
	}
	statuses, err := f.reads.LotStatuses(f.ctx, ids)
	require.NoError(f.t, err)
	for id, st := range statuses {
		require.Equal(f.t, occupied[id], st.Occupied)
	}
}
