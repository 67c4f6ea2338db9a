package commands

//go:generate mockgen -source=admin.go -destination=../../../tests/mock/commands/admin_mock.go -package=commandsmock

import (
	"context"
	"log/slog"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrAdminRequired     = errs.Mark(errs.New("admin access required"), errs.ErrForbidden)
	ErrLotExists         = errs.Mark(errs.New("parking lot code or name already exists"), errs.ErrConflict)
	ErrLotOccupied       = errs.Mark(errs.New("cannot delete parking lot with occupied spots"), errs.ErrConflict)
	ErrSpotOccupied      = errs.Mark(errs.New("cannot delete an occupied spot"), errs.ErrConflict)
	ErrSpotNotFound      = errs.Mark(errs.New("spot not found in this parking lot"), errs.ErrNotFound)
	ErrLotFieldImmutable = errs.Mark(lot.ErrImmutableField, errs.ErrValidation)
)

// Actor is the authenticated caller of an administrative operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) requireAdmin() error {
	if !a.Role.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}

// UpdateLotInput carries Code and NumberOfSpots only so that attempts to
// change them can be rejected; they are never written.
type UpdateLotInput struct {
	Code          *string
	NumberOfSpots *int
	Name          *string
	Address       *string
	Pincode       *string
	Price         *decimal.Decimal
}

type AdminCommands interface {
	CreateLot(ctx context.Context, actor Actor, spec lot.Spec) (*lot.Lot, error)
	UpdateLot(ctx context.Context, actor Actor, lotID uuid.UUID, in UpdateLotInput) (*lot.Lot, error)
	DeleteLot(ctx context.Context, actor Actor, lotID uuid.UUID) error
	DeleteSpot(ctx context.Context, actor Actor, lotID, spotID uuid.UUID) error
}

type adminCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	cache LotStatusInvalidator
}

func NewAdminCommands(uow shared.UnitOfWork, clk clock.Clock, cache LotStatusInvalidator) AdminCommands {
	return &adminCommandsImpl{uow: uow, clock: clk, cache: cache}
}

func (a *adminCommandsImpl) CreateLot(ctx context.Context, actor Actor, spec lot.Spec) (*lot.Lot, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}

	now := a.clock.Now()
	created, err := lot.NewLot(spec, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	spots, err := spot.NewSpotsForLot(created.ID(), created.NumberOfSpots(), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lots().Create(ctx, created); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrLotExists
			}
			return err
		}
		return tx.Spots().CreateBatch(ctx, spots)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("parking lot created",
		"lot_id", created.ID(),
		"code", created.Code().String(),
		"spots", created.NumberOfSpots(),
		"admin_id", actor.UserID)
	return created, nil
}

func (a *adminCommandsImpl) UpdateLot(ctx context.Context, actor Actor, lotID uuid.UUID, in UpdateLotInput) (*lot.Lot, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}

	var updated *lot.Lot
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().LockByID(ctx, lotID)
		if err != nil {
			return mapNotFound(err, ErrLotNotFound)
		}
		if err := l.EnsureUnchanged(in.Code, in.NumberOfSpots); err != nil {
			return ErrLotFieldImmutable
		}

		patch := lot.Patch{Name: in.Name, Address: in.Address, Pincode: in.Pincode, Price: in.Price}
		if err := l.Apply(patch, a.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Lots().Update(ctx, l); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrLotExists
			}
			return err
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateLots(ctx, a.cache, lotID)
	return updated, nil
}

func (a *adminCommandsImpl) DeleteLot(ctx context.Context, actor Actor, lotID uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// exclusive lot lock waits out in-flight bookings and blocks new ones
		if _, err := tx.Lots().LockByID(ctx, lotID); err != nil {
			return mapNotFound(err, ErrLotNotFound)
		}
		spots, err := tx.Spots().ListByLot(ctx, lotID)
		if err != nil {
			return err
		}
		if spot.NewLedger(lotID, spots).HasOccupied() {
			return ErrLotOccupied
		}
		return tx.Lots().Delete(ctx, lotID)
	})
	if err != nil {
		return err
	}

	invalidateLots(ctx, a.cache, lotID)
	slog.Info("parking lot deleted", "lot_id", lotID, "admin_id", actor.UserID)
	return nil
}

// DeleteSpot leaves the lot's number_of_spots as created.
func (a *adminCommandsImpl) DeleteSpot(ctx context.Context, actor Actor, lotID, spotID uuid.UUID) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}

	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().ShareLockByID(ctx, lotID); err != nil {
			return mapNotFound(err, ErrLotNotFound)
		}
		s, err := tx.Spots().LockByID(ctx, spotID)
		if err != nil {
			return mapNotFound(err, ErrSpotNotFound)
		}
		if s.LotID() != lotID {
			return ErrSpotNotFound
		}
		if err := s.EnsureDeletable(); err != nil {
			return ErrSpotOccupied
		}
		return tx.Spots().Delete(ctx, spotID)
	})
	if err != nil {
		return err
	}

	invalidateLots(ctx, a.cache, lotID)
	slog.Info("parking spot deleted", "lot_id", lotID, "spot_id", spotID, "admin_id", actor.UserID)
	return nil
}
