package memory

import (
	"context"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

func userLockKey(id uuid.UUID) string        { return "users:" + id.String() }
func lotLockKey(id uuid.UUID) string         { return "parking_lots:" + id.String() }
func spotLockKey(id uuid.UUID) string        { return "parking_spots:" + id.String() }
func reservationLockKey(id uuid.UUID) string { return "reservations:" + id.String() }

func (t *memTx) Users() shared.UserRepository               { return userRepository{t} }
func (t *memTx) Lots() shared.LotRepository                 { return lotRepository{t} }
func (t *memTx) Spots() shared.SpotRepository               { return spotRepository{t} }
func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepository{t} }

type userRepository struct{ tx *memTx }

func (r userRepository) Create(_ context.Context, u *user.User) error {
	return r.tx.putUser(userToRecord(u))
}

func (r userRepository) Update(_ context.Context, u *user.User) error {
	if _, ok := r.tx.user(u.ID()); !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return r.tx.putUser(userToRecord(u))
}

func (r userRepository) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	rec, ok := r.tx.user(id)
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return userFromRecord(rec)
}

func (r userRepository) FindByUsername(_ context.Context, username string) (*user.User, error) {
	for _, rec := range r.tx.allUsers() {
		if rec.username == username {
			return userFromRecord(rec)
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (r userRepository) LockByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if err := r.tx.lock(ctx, userLockKey(id), lockExclusive); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func userFromRecord(rec userRecord) (*user.User, error) {
	u, err := rec.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr("invalid user row", err, infra.KindDBFailure)
	}
	return u, nil
}

type lotRepository struct{ tx *memTx }

func (r lotRepository) Create(_ context.Context, l *lot.Lot) error {
	return r.tx.putLot(lotToRecord(l))
}

func (r lotRepository) Update(_ context.Context, l *lot.Lot) error {
	if _, ok := r.tx.lot(l.ID()); !ok {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return r.tx.putLot(lotToRecord(l))
}

func (r lotRepository) Delete(_ context.Context, id uuid.UUID) error {
	rec, ok := r.tx.lot(id)
	if !ok {
		return infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return r.tx.deleteLot(rec)
}

func (r lotRepository) FindByID(_ context.Context, id uuid.UUID) (*lot.Lot, error) {
	rec, ok := r.tx.lot(id)
	if !ok {
		return nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return rec.toDomain(), nil
}

func (r lotRepository) LockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	if err := r.tx.lock(ctx, lotLockKey(id), lockExclusive); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r lotRepository) ShareLockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	if err := r.tx.lock(ctx, lotLockKey(id), lockShared); err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

type spotRepository struct{ tx *memTx }

func (r spotRepository) CreateBatch(_ context.Context, spots []*spot.Spot) error {
	for _, s := range spots {
		if err := r.tx.putSpot(spotToRecord(s)); err != nil {
			return err
		}
	}
	return nil
}

// LockFirstAvailable walks the lot in allocation order and takes the first
// Available spot whose lock is free, re-checking its status once locked.
func (r spotRepository) LockFirstAvailable(_ context.Context, lotID uuid.UUID) (*spot.Spot, error) {
	for _, candidate := range r.tx.spotsOfLot(lotID) {
		if candidate.status != spot.StatusAvailable.String() {
			continue
		}
		key := spotLockKey(candidate.id)
		if !r.tx.locks.tryLock(key, lockExclusive) {
			continue
		}
		current, ok := r.tx.spot(candidate.id)
		if !ok || current.status != spot.StatusAvailable.String() {
			r.tx.locks.unlock(key)
			continue
		}
		return current.toDomain(), nil
	}
	return nil, infra.WrapRepoErr("no available spot", nil, infra.KindNotFound)
}

func (r spotRepository) LockByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	if err := r.tx.lock(ctx, spotLockKey(id), lockExclusive); err != nil {
		return nil, err
	}
	rec, ok := r.tx.spot(id)
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return rec.toDomain(), nil
}

func (r spotRepository) ListByLot(_ context.Context, lotID uuid.UUID) ([]*spot.Spot, error) {
	records := r.tx.spotsOfLot(lotID)
	result := make([]*spot.Spot, 0, len(records))
	for _, rec := range records {
		result = append(result, rec.toDomain())
	}
	return result, nil
}

func (r spotRepository) UpdateStatus(_ context.Context, s *spot.Spot) error {
	rec, ok := r.tx.spot(s.ID())
	if !ok {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	rec.status = s.Status().String()
	return r.tx.putSpot(rec)
}

func (r spotRepository) Delete(_ context.Context, id uuid.UUID) error {
	rec, ok := r.tx.spot(id)
	if !ok {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return r.tx.deleteSpot(rec)
}

type reservationRepository struct{ tx *memTx }

func (r reservationRepository) Create(_ context.Context, res *reservation.Reservation) error {
	return r.tx.putReservation(reservationToRecord(res))
}

func (r reservationRepository) ExistsActiveByUser(_ context.Context, userID uuid.UUID) (bool, error) {
	return len(r.activeOf(userID)) > 0, nil
}

func (r reservationRepository) LockActiveByUser(ctx context.Context, userID uuid.UUID) (*reservation.Reservation, error) {
	for _, candidate := range r.activeOf(userID) {
		if err := r.tx.lock(ctx, reservationLockKey(candidate.id), lockExclusive); err != nil {
			return nil, err
		}
		// re-check after the wait, as READ COMMITTED does
		current, ok := r.tx.reservation(candidate.id)
		if !ok || current.status != reservation.StatusActive.String() {
			continue
		}
		res, err := current.toDomain()
		if err != nil {
			return nil, infra.WrapRepoErr("invalid reservation row", err, infra.KindDBFailure)
		}
		return res, nil
	}
	return nil, infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
}

func (r reservationRepository) Complete(_ context.Context, res *reservation.Reservation) error {
	current, ok := r.tx.reservation(res.ID())
	if !ok || current.status != reservation.StatusActive.String() {
		return infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
	}
	return r.tx.putReservation(reservationToRecord(res))
}

func (r reservationRepository) activeOf(userID uuid.UUID) []reservationRecord {
	return r.tx.reservationsWhere(func(res reservationRecord) bool {
		return res.userID == userID && res.status == reservation.StatusActive.String()
	})
}
