package commands

//go:generate mockgen -source=allocation.go -destination=../../../tests/mock/commands/allocation_mock.go -package=commandsmock

import (
	"context"
	"log/slog"
	"time"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrUserNotFound            = errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	ErrLotNotFound             = errs.Mark(errs.New("parking lot not found"), errs.ErrNotFound)
	ErrActiveReservationExists = errs.Mark(errs.New("user already has an active reservation"), errs.ErrConflict)
	ErrLotFull                 = errs.Mark(errs.New("no available spot in this parking lot"), errs.ErrCapacity)
	ErrNoActiveReservation     = errs.Mark(errs.New("no active reservation"), errs.ErrNotFound)
	ErrLedgerInconsistent      = errs.Mark(errs.New("spot status does not match reservation"), errs.ErrConflict)
)

type BookResult struct {
	Reservation *reservation.Reservation
	Spot        *spot.Spot
	Lot         *lot.Lot
}

type ReleaseResult struct {
	Reservation *reservation.Reservation
	Spot        *spot.Spot
	Lot         *lot.Lot
	Cost        decimal.Decimal
}

type AllocationCommands interface {
	// Book assigns the lowest Available spot of lotID to userID.
	Book(ctx context.Context, userID, lotID uuid.UUID, vehicleNumber string) (*BookResult, error)
	// Release completes the user's active reservation and frees its spot.
	Release(ctx context.Context, userID uuid.UUID) (*ReleaseResult, error)
}

type allocationCommandsImpl struct {
	uow      shared.UnitOfWork
	services *reservation.Services
	cache    LotStatusInvalidator
	recorder Recorder
}

func NewAllocationCommands(
	uow shared.UnitOfWork,
	services *reservation.Services,
	cache LotStatusInvalidator,
	recorder Recorder,
) AllocationCommands {
	return &allocationCommandsImpl{
		uow:      uow,
		services: services,
		cache:    cache,
		recorder: recorder,
	}
}

func (a *allocationCommandsImpl) Book(ctx context.Context, userID, lotID uuid.UUID, vehicleNumber string) (*BookResult, error) {
	started := time.Now()
	result, err := a.book(ctx, userID, lotID, vehicleNumber)
	outcome := outcomeOf(err)
	a.recorder.ObserveBooking(outcome, time.Since(started))

	if err != nil {
		if outcome == OutcomeError {
			slog.Error("booking failed", "user_id", userID, "lot_id", lotID, "error", err.Error())
		} else {
			slog.Info("booking rejected", "user_id", userID, "lot_id", lotID, "outcome", outcome, "reason", err.Error())
		}
		return nil, err
	}

	invalidateLots(ctx, a.cache, lotID)
	slog.Info("spot booked",
		"user_id", userID,
		"lot_id", lotID,
		"spot_number", result.Spot.Number(),
		"reservation_id", result.Reservation.ID())
	return result, nil
}

func (a *allocationCommandsImpl) book(ctx context.Context, userID, lotID uuid.UUID, vehicleNumber string) (*BookResult, error) {
	vehicle, err := reservation.NewVehicleNumber(vehicleNumber)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result *BookResult
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// user lock first: a second booking of the same user waits here and
		// then sees the first one's reservation
		if _, err := tx.Users().LockByID(ctx, userID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		exists, err := tx.Reservations().ExistsActiveByUser(ctx, userID)
		if err != nil {
			return err
		}
		if exists {
			return ErrActiveReservationExists
		}

		l, err := tx.Lots().ShareLockByID(ctx, lotID)
		if err != nil {
			return mapNotFound(err, ErrLotNotFound)
		}

		s, err := tx.Spots().LockFirstAvailable(ctx, lotID)
		if err != nil {
			return mapNotFound(err, ErrLotFull)
		}
		if err := s.Occupy(); err != nil {
			return errs.Mark(err, ErrLedgerInconsistent)
		}
		if err := tx.Spots().UpdateStatus(ctx, s); err != nil {
			return err
		}

		res := reservation.NewReservation(a.services, userID, lotID, s.ID(), vehicle)
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		result = &BookResult{Reservation: res, Spot: s, Lot: l}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (a *allocationCommandsImpl) Release(ctx context.Context, userID uuid.UUID) (*ReleaseResult, error) {
	result, err := a.release(ctx, userID)
	if err != nil {
		a.recorder.ObserveRelease(outcomeOf(err), decimal.Zero, 0)
		if outcomeOf(err) == OutcomeError {
			slog.Error("release failed", "user_id", userID, "error", err.Error())
		}
		return nil, err
	}

	parked := result.Reservation.Duration(a.services.Clock.Now())
	a.recorder.ObserveRelease(OutcomeSuccess, result.Cost, parked)
	invalidateLots(ctx, a.cache, result.Lot.ID())
	slog.Info("spot released",
		"user_id", userID,
		"lot_id", result.Lot.ID(),
		"spot_number", result.Spot.Number(),
		"cost", result.Cost.StringFixed(1))
	return result, nil
}

func (a *allocationCommandsImpl) release(ctx context.Context, userID uuid.UUID) (*ReleaseResult, error) {
	var result *ReleaseResult
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().LockByID(ctx, userID); err != nil {
			return mapNotFound(err, ErrUserNotFound)
		}

		res, err := tx.Reservations().LockActiveByUser(ctx, userID)
		if err != nil {
			return mapNotFound(err, ErrNoActiveReservation)
		}
		if res.SpotID() == nil {
			return ErrLedgerInconsistent
		}

		s, err := tx.Spots().LockByID(ctx, *res.SpotID())
		if err != nil {
			return mapNotFound(err, ErrLedgerInconsistent)
		}

		// plain read: the rate in effect at release time is billed
		l, err := tx.Lots().FindByID(ctx, res.LotID())
		if err != nil {
			return mapNotFound(err, ErrLotNotFound)
		}

		cost, err := res.Complete(a.services, l.HourlyRate())
		if err != nil {
			return errs.Mark(err, ErrNoActiveReservation)
		}
		if err := s.Vacate(); err != nil {
			return errs.Mark(err, ErrLedgerInconsistent)
		}

		if err := tx.Reservations().Complete(ctx, res); err != nil {
			return err
		}
		if err := tx.Spots().UpdateStatus(ctx, s); err != nil {
			return err
		}

		result = &ReleaseResult{Reservation: res, Spot: s, Lot: l, Cost: cost}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func mapNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
