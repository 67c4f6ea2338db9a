//go:build unit

package commands_test

import (
	"sync"
	"testing"
	"time"

	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocation_WorkedExample(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithCode("A1").WithPrice("10").WithSpots(2))
	u1, u2, u3 := f.seedUser("user01"), f.seedUser("user02"), f.seedUser("user03")

	first, err := f.alloc.Book(f.ctx, u1, lotID, "MH12AB1234")
	require.NoError(t, err)
	assert.Equal(t, "1", first.Spot.Number())
	assert.Equal(t, "A1", first.Spot.Label())

	second, err := f.alloc.Book(f.ctx, u2, lotID, "MH12AB1235")
	require.NoError(t, err)
	assert.Equal(t, "2", second.Spot.Number())

	_, err = f.alloc.Book(f.ctx, u3, lotID, "MH12AB1236")
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCapacity))
	assert.True(t, errs.Is(err, commands.ErrLotFull))

	f.clock.Add(time.Hour)
	released, err := f.alloc.Release(f.ctx, u1)
	require.NoError(t, err)
	assert.Equal(t, "10.0", released.Cost.StringFixed(1))
	assert.Equal(t, "1", released.Spot.Number())
	assert.False(t, released.Reservation.IsActive())

	third, err := f.alloc.Book(f.ctx, u3, lotID, "MH12AB1236")
	require.NoError(t, err)
	assert.Equal(t, "1", third.Spot.Number())

	f.assertLedgerConsistent()
	assert.Equal(t, []string{"success", "success", "capacity", "success"}, f.recorder.bookings)
	assert.Equal(t, []string{"success"}, f.recorder.releases)
}

func TestAllocation_ConcurrentLastSpot(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(1))

	const drivers = 8
	users := make([]uuid.UUID, drivers)
	for i := range users {
		users[i] = f.seedUser("racer" + string(rune('a'+i)) + "x")
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		capacity int
	)
	for _, id := range users {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, err := f.alloc.Book(f.ctx, userID, lotID, "KA01AB1234")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errs.Is(err, errs.ErrCapacity):
				capacity++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(id)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, drivers-1, capacity)
	f.assertLedgerConsistent()
}

func TestAllocation_ConcurrentBookingsOfOneUser(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(5))
	userID := f.seedUser("hurried")

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.alloc.Book(f.ctx, userID, lotID, "KA01AB1234")
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if errs.Is(err, errs.ErrConflict) {
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, 4, conflicts)
	f.assertLedgerConsistent()
}

func TestAllocation_ConcurrentBookAndRelease(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(3))

	users := make([]uuid.UUID, 6)
	for i := range users {
		users[i] = f.seedUser("cycler" + string(rune('a'+i)) + "x")
	}

	var wg sync.WaitGroup
	for _, id := range users {
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			for round := 0; round < 5; round++ {
				if _, err := f.alloc.Book(f.ctx, userID, lotID, "KA01AB1234"); err != nil {
					continue
				}
				_, _ = f.alloc.Release(f.ctx, userID)
			}
		}(id)
	}
	wg.Wait()

	f.assertLedgerConsistent()
}

func TestAllocation_BookValidation(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder())
	userID := f.seedUser("driver")

	tests := []struct {
		name    string
		lotID   uuid.UUID
		vehicle string
		want    error
	}{
		{name: "malformed vehicle number", lotID: lotID, vehicle: "12AB", want: errs.ErrValidation},
		// validated before the lot is looked up
		{name: "malformed vehicle number on unknown lot", lotID: uuid.New(), vehicle: "nope", want: errs.ErrValidation},
		{name: "unknown lot", lotID: uuid.New(), vehicle: "MH12AB1234", want: commands.ErrLotNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.alloc.Book(f.ctx, userID, tt.lotID, tt.vehicle)
			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.want), "got %v", err)
		})
	}
	f.assertLedgerConsistent()
}

func TestAllocation_VehicleNumberIsNormalized(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder())
	userID := f.seedUser("driver")

	booked, err := f.alloc.Book(f.ctx, userID, lotID, " mh 12 ab 1234 ")
	require.NoError(t, err)
	assert.Equal(t, "MH12AB1234", booked.Reservation.VehicleNumber().String())
}

func TestAllocation_SecondActiveReservationIsConflict(t *testing.T) {
	f := newFixture(t)
	a := f.seedLot(builder.NewLotBuilder().WithCode("A1").WithName("First"))
	b := f.seedLot(builder.NewLotBuilder().WithCode("B1").WithName("Second"))
	userID := f.seedUser("driver")

	_, err := f.alloc.Book(f.ctx, userID, a, "MH12AB1234")
	require.NoError(t, err)

	_, err = f.alloc.Book(f.ctx, userID, b, "MH12AB1234")
	assert.True(t, errs.Is(err, commands.ErrActiveReservationExists))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	f.assertLedgerConsistent()
}

func TestAllocation_ReleaseWithoutReservation(t *testing.T) {
	f := newFixture(t)
	userID := f.seedUser("driver")

	_, err := f.alloc.Release(f.ctx, userID)
	assert.True(t, errs.Is(err, commands.ErrNoActiveReservation))
	assert.True(t, errs.Is(err, errs.ErrNotFound))
	assert.Equal(t, []string{"not_found"}, f.recorder.releases)
}

func TestAllocation_ReleaseBillsRateAtReleaseTime(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithPrice("10"))
	userID := f.seedUser("driver")

	_, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(30)
	_, err = f.admin.UpdateLot(f.ctx, f.root, lotID, commands.UpdateLotInput{Price: &newPrice})
	require.NoError(t, err)

	f.clock.Add(90 * time.Minute)
	released, err := f.alloc.Release(f.ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "45.0", released.Cost.StringFixed(1))
}

func TestAllocation_ReleaseThenBookAgain(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(1))
	userID := f.seedUser("driver")

	_, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)
	_, err = f.alloc.Release(f.ctx, userID)
	require.NoError(t, err)

	again, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)
	assert.Equal(t, "1", again.Spot.Number())

	// immediate release is free
	released, err := f.alloc.Release(f.ctx, userID)
	require.NoError(t, err)
	assert.True(t, released.Cost.IsZero())
	f.assertLedgerConsistent()
}

func TestAllocation_InvalidatesLotStatus(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder())
	userID := f.seedUser("driver")

	_, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)
	_, err = f.alloc.Release(f.ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{lotID, lotID}, f.cache.lots)
}
