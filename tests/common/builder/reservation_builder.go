//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationBuilder produces booking and release results as the
// allocation commands return them, without touching storage.
type ReservationBuilder struct {
	UserID        uuid.UUID
	VehicleNumber string
	Lot           *LotBuilder
	Parked        time.Duration
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		UserID:        uuid.New(),
		VehicleNumber: "KA01AB1234",
		Lot:           NewLotBuilder(),
		Parked:        time.Hour,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildBooking() (*commands.BookResult, error) {
	l, spots, err := b.Lot.BuildWithSpots()
	if err != nil {
		return nil, err
	}
	vehicle, err := reservation.NewVehicleNumber(b.VehicleNumber)
	if err != nil {
		return nil, err
	}
	sp := spots[0]
	if err := sp.Occupy(); err != nil {
		return nil, err
	}
	services := reservation.NewServices(clock.NewMockClock(b.Lot.Now), billing.NewHourlyCalculator())
	r := reservation.NewReservation(services, b.UserID, l.ID(), sp.ID(), vehicle)
	return &commands.BookResult{Reservation: r, Spot: sp, Lot: l}, nil
}

// BuildRelease completes the booking after Parked at the lot's price.
func (b *ReservationBuilder) BuildRelease() (*commands.ReleaseResult, error) {
	booked, err := b.BuildBooking()
	if err != nil {
		return nil, err
	}
	clk := clock.NewMockClock(b.Lot.Now.Add(b.Parked))
	services := reservation.NewServices(clk, billing.NewHourlyCalculator())
	cost, err := booked.Reservation.Complete(services, booked.Lot.HourlyRate())
	if err != nil {
		return nil, err
	}
	if err := booked.Spot.Vacate(); err != nil {
		return nil, err
	}
	return &commands.ReleaseResult{
		Reservation: booked.Reservation,
		Spot:        booked.Spot,
		Lot:         booked.Lot,
		Cost:        cost,
	}, nil
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	number, label := "1", "A1"
	spotID := uuid.New()
	return &queries.ReservationView{
		ID:            uuid.New(),
		UserID:        b.UserID,
		SpotID:        &spotID,
		SpotNumber:    &number,
		SpotLabel:     &label,
		LotID:         uuid.New(),
		LotCode:       b.Lot.Code,
		LotName:       b.Lot.Name,
		HourlyRate:    b.Lot.Price,
		VehicleNumber: b.VehicleNumber,
		StartTime:     b.Lot.Now,
		Status:        string(reservation.StatusActive),
		CreatedAt:     b.Lot.Now,
		UpdatedAt:     b.Lot.Now,
	}
}

func (b *ReservationBuilder) BuildActiveView(costSoFar string) *queries.ActiveReservationView {
	return &queries.ActiveReservationView{
		ReservationView: *b.BuildView(),
		CostSoFar:       decimal.RequireFromString(costSoFar),
		DurationMinutes: int64(b.Parked / time.Minute),
	}
}

// Fluent builder methods
func (b *ReservationBuilder) WithUser(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithVehicle(v string) *ReservationBuilder {
	b.VehicleNumber = v
	return b
}

func (b *ReservationBuilder) WithParked(d time.Duration) *ReservationBuilder {
	b.Parked = d
	return b
}
