package shared

import (
	"context"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once; it must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one transaction. Lock* methods hold
// their row lock until the transaction ends.
type Tx interface {
	Users() UserRepository
	Lots() LotRepository
	Spots() SpotRepository
	Reservations() ReservationRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
	// LockByID serializes operations of one user (FOR UPDATE).
	LockByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) error
	Update(ctx context.Context, l *lot.Lot) error
	// Delete removes the lot with its spots and reservation history.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	// LockByID excludes concurrent bookings into the lot (FOR UPDATE).
	LockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	// ShareLockByID lets bookings proceed in parallel while blocking lot deletion (FOR SHARE).
	ShareLockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
}

type SpotRepository interface {
	CreateBatch(ctx context.Context, spots []*spot.Spot) error
	// LockFirstAvailable locks the lowest Available spot not already locked by
	// another transaction (FOR UPDATE SKIP LOCKED). NOT_FOUND when none is left.
	LockFirstAvailable(ctx context.Context, lotID uuid.UUID) (*spot.Spot, error)
	LockByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error)
	ListByLot(ctx context.Context, lotID uuid.UUID) ([]*spot.Spot, error)
	UpdateStatus(ctx context.Context, s *spot.Spot) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	ExistsActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error)
	// LockActiveByUser returns NOT_FOUND when the user has nothing parked.
	LockActiveByUser(ctx context.Context, userID uuid.UUID) (*reservation.Reservation, error)
	Complete(ctx context.Context, r *reservation.Reservation) error
}
