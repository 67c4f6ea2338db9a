package reservation

import (
	"errors"
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAlreadyCompleted = errors.New("reservation is already completed")
	ErrInvalidStatus    = errors.New("invalid reservation status")
)

type Services struct {
	Clock      clock.Clock
	Calculator billing.Calculator
}

func NewServices(c clock.Clock, calc billing.Calculator) *Services {
	return &Services{Clock: c, Calculator: calc}
}

// Reservation moves active -> completed exactly once. endTime and cost are nil while active.
type Reservation struct {
	id            uuid.UUID
	userID        uuid.UUID
	spotID        *uuid.UUID
	lotID         uuid.UUID
	vehicleNumber VehicleNumber
	startTime     time.Time
	endTime       *time.Time
	cost          *decimal.Decimal
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReservation(services *Services, userID, lotID, spotID uuid.UUID, vehicle VehicleNumber) *Reservation {
	now := services.Clock.Now()
	sid := spotID
	return &Reservation{
		id:            uuid.New(),
		userID:        userID,
		spotID:        &sid,
		lotID:         lotID,
		vehicleNumber: vehicle,
		startTime:     now,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}
}

// spotID is nil for history rows whose spot was later deleted.
func ReconstructReservation(
	id, userID uuid.UUID,
	spotID *uuid.UUID,
	lotID uuid.UUID,
	vehicle VehicleNumber,
	startTime time.Time,
	endTime *time.Time,
	cost *decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:            id,
		userID:        userID,
		spotID:        spotID,
		lotID:         lotID,
		vehicleNumber: vehicle,
		startTime:     startTime,
		endTime:       endTime,
		cost:          cost,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Complete closes the reservation at the current clock time and bills it
// with the hourly rate in effect now.
func (r *Reservation) Complete(services *Services, hourlyRate decimal.Decimal) (decimal.Decimal, error) {
	if r.status != StatusActive {
		return decimal.Zero, ErrAlreadyCompleted
	}
	now := services.Clock.Now()
	cost := services.Calculator.Cost(r.startTime, now, hourlyRate)
	r.endTime = &now
	r.cost = &cost
	r.status = StatusCompleted
	r.updatedAt = now
	return cost, nil
}

// CostSoFar is the running charge of an active reservation. Display only.
func (r *Reservation) CostSoFar(services *Services, hourlyRate decimal.Decimal) decimal.Decimal {
	if r.cost != nil {
		return *r.cost
	}
	return services.Calculator.Cost(r.startTime, services.Clock.Now(), hourlyRate)
}

func (r *Reservation) Duration(now time.Time) time.Duration {
	end := now
	if r.endTime != nil {
		end = *r.endTime
	}
	return billing.Elapsed(r.startTime, end)
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() uuid.UUID                { return r.id }
func (r *Reservation) UserID() uuid.UUID            { return r.userID }
func (r *Reservation) SpotID() *uuid.UUID           { return r.spotID }
func (r *Reservation) LotID() uuid.UUID             { return r.lotID }
func (r *Reservation) VehicleNumber() VehicleNumber { return r.vehicleNumber }
func (r *Reservation) StartTime() time.Time         { return r.startTime }
func (r *Reservation) EndTime() *time.Time          { return r.endTime }
func (r *Reservation) Cost() *decimal.Decimal       { return r.cost }
func (r *Reservation) Status() Status               { return r.status }
func (r *Reservation) CreatedAt() time.Time         { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time         { return r.updatedAt }
