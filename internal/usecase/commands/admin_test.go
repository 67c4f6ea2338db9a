//go:build unit

package commands_test

import (
	"testing"
	"time"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_RequiresAdminRole(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder())
	driver := commands.Actor{UserID: uuid.New(), Role: user.RoleUser}

	_, err := f.admin.CreateLot(f.ctx, driver, builder.NewLotBuilder().WithCode("Z9").WithName("Other").Spec())
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	_, err = f.admin.UpdateLot(f.ctx, driver, lotID, commands.UpdateLotInput{})
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	assert.True(t, errs.Is(f.admin.DeleteLot(f.ctx, driver, lotID), errs.ErrForbidden))
	assert.True(t, errs.Is(f.admin.DeleteSpot(f.ctx, driver, lotID, uuid.New()), errs.ErrForbidden))
}

func TestAdmin_CreateLot(t *testing.T) {
	f := newFixture(t)

	created, err := f.admin.CreateLot(f.ctx, f.root, builder.NewLotBuilder().WithCode(" b7 ").WithSpots(12).Spec())
	require.NoError(t, err)
	assert.Equal(t, "B7", created.Code().String())

	spots, err := f.reads.ListSpots(f.ctx, created.ID())
	require.NoError(t, err)
	require.Len(t, spots, 12)
	assert.Equal(t, "1", spots[0].SpotNumber)
	assert.Equal(t, "B2", spots[11].Label)
	for _, s := range spots {
		assert.Equal(t, "A", s.Status)
	}
}

func TestAdmin_CreateLotDuplicates(t *testing.T) {
	f := newFixture(t)
	f.seedLot(builder.NewLotBuilder().WithCode("A1").WithName("Central Plaza"))

	tests := []struct {
		name string
		lot  *builder.LotBuilder
	}{
		{name: "same code", lot: builder.NewLotBuilder().WithCode("a1").WithName("Another")},
		{name: "same name", lot: builder.NewLotBuilder().WithCode("C3").WithName("Central Plaza")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.admin.CreateLot(f.ctx, f.root, tt.lot.Spec())
			assert.True(t, errs.Is(err, commands.ErrLotExists))
			assert.True(t, errs.Is(err, errs.ErrConflict))
		})
	}

	lots, err := f.reads.ListLots(f.ctx)
	require.NoError(t, err)
	assert.Len(t, lots, 1)
}

func TestAdmin_CreateLotValidation(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		lot  *builder.LotBuilder
	}{
		{name: "pincode too short", lot: builder.NewLotBuilder().WithPincode("5600")},
		{name: "negative price", lot: builder.NewLotBuilder().WithPrice("-1")},
		{name: "price beyond storage precision", lot: builder.NewLotBuilder().WithPrice("123456789")},
		{name: "no spots", lot: builder.NewLotBuilder().WithSpots(0)},
		{name: "code with symbols", lot: builder.NewLotBuilder().WithCode("A-1")},
		{name: "blank name", lot: builder.NewLotBuilder().WithName("  ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.admin.CreateLot(f.ctx, f.root, tt.lot.Spec())
			assert.True(t, errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}
}

func TestAdmin_UpdateLot(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithCode("A1").WithSpots(3))
	f.seedLot(builder.NewLotBuilder().WithCode("B1").WithName("Taken"))

	sameCode, otherCode := "A1", "Z1"
	sameCount, otherCount := 3, 9
	name, taken := "Renamed Plaza", "Taken"
	price := decimal.RequireFromString("55.5")
	huge := decimal.RequireFromString("100000000")

	tests := []struct {
		name string
		in   commands.UpdateLotInput
		want error
	}{
		{name: "rename and reprice", in: commands.UpdateLotInput{Name: &name, Price: &price}},
		{name: "unchanged immutable fields are accepted", in: commands.UpdateLotInput{Code: &sameCode, NumberOfSpots: &sameCount}},
		{name: "code change", in: commands.UpdateLotInput{Code: &otherCode}, want: errs.ErrValidation},
		{name: "spot count change", in: commands.UpdateLotInput{NumberOfSpots: &otherCount}, want: errs.ErrValidation},
		{name: "price beyond storage precision", in: commands.UpdateLotInput{Price: &huge}, want: errs.ErrValidation},
		{name: "name clash", in: commands.UpdateLotInput{Name: &taken}, want: errs.ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.clock.Add(time.Minute)
			updated, err := f.admin.UpdateLot(f.ctx, f.root, lotID, tt.in)
			if tt.want != nil {
				assert.True(t, errs.Is(err, tt.want), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "A1", updated.Code().String())
			assert.Equal(t, 3, updated.NumberOfSpots())
		})
	}

	view, err := f.reads.FindLotByID(f.ctx, lotID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Plaza", view.Name)
	assert.True(t, view.Price.Equal(price))

	_, err = f.admin.UpdateLot(f.ctx, f.root, uuid.New(), commands.UpdateLotInput{Name: &name})
	assert.True(t, errs.Is(err, errs.ErrNotFound))
}

func TestAdmin_DeleteLotGuardedByOccupancy(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(2))
	userID := f.seedUser("driver")

	_, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)

	err = f.admin.DeleteLot(f.ctx, f.root, lotID)
	assert.True(t, errs.Is(err, commands.ErrLotOccupied))
	assert.True(t, errs.Is(err, errs.ErrConflict))
	f.assertLedgerConsistent()

	f.clock.Add(30 * time.Minute)
	_, err = f.alloc.Release(f.ctx, userID)
	require.NoError(t, err)

	require.NoError(t, f.admin.DeleteLot(f.ctx, f.root, lotID))

	_, err = f.reads.FindLotByID(f.ctx, lotID)
	assert.Error(t, err)
	page, err := f.reads.ListByUser(f.ctx, userID, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, page, "reservation history goes with the lot")

	assert.True(t, errs.Is(f.admin.DeleteLot(f.ctx, f.root, lotID), errs.ErrNotFound))
	f.assertLedgerConsistent()
}

func TestAdmin_DeleteSpot(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithCode("A1").WithSpots(2))
	otherLot := f.seedLot(builder.NewLotBuilder().WithCode("B1").WithName("Other"))
	userID := f.seedUser("driver")

	booked, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
	require.NoError(t, err)
	spots, err := f.reads.ListSpots(f.ctx, lotID)
	require.NoError(t, err)
	free := spots[1].ID

	err = f.admin.DeleteSpot(f.ctx, f.root, lotID, booked.Spot.ID())
	assert.True(t, errs.Is(err, commands.ErrSpotOccupied))

	err = f.admin.DeleteSpot(f.ctx, f.root, otherLot, free)
	assert.True(t, errs.Is(err, commands.ErrSpotNotFound))

	require.NoError(t, f.admin.DeleteSpot(f.ctx, f.root, lotID, free))

	remaining, err := f.reads.ListSpots(f.ctx, lotID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	view, err := f.reads.FindLotByID(f.ctx, lotID)
	require.NoError(t, err)
	assert.Equal(t, 2, view.NumberOfSpots)
	f.assertLedgerConsistent()
}

func TestAdmin_DeleteLotWaitsForInFlightBooking(t *testing.T) {
	f := newFixture(t)
	lotID := f.seedLot(builder.NewLotBuilder().WithSpots(1))
	userID := f.seedUser("driver")

	done := make(chan error, 2)
	go func() {
		_, err := f.alloc.Book(f.ctx, userID, lotID, "MH12AB1234")
		done <- err
	}()
	go func() {
		done <- f.admin.DeleteLot(f.ctx, f.root, lotID)
	}()

	var errsSeen []error
	for i := 0; i < 2; i++ {
		errsSeen = append(errsSeen, <-done)
	}

	// either the booking won and the delete was refused, or the lot was
	// deleted first and the booking found nothing
	f.assertLedgerConsistent()
	var failures int
	for _, err := range errsSeen {
		if err != nil {
			failures++
			assert.True(t, errs.Is(err, errs.ErrConflict) || errs.Is(err, errs.ErrNotFound), "got %v", err)
		}
	}
	assert.Equal(t, 1, failures)
}
