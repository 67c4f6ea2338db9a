package repository

import (
	"context"

	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/repository/converter"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertReservationSQL = `
INSERT INTO reservations (id, user_id, spot_id, lot_id, vehicle_number, start_time, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	existsActiveReservationSQL = `SELECT EXISTS (SELECT 1 FROM reservations WHERE user_id = $1 AND status = 'active')`

	lockActiveReservationSQL = `
SELECT ` + converter.ReservationColumns + ` FROM reservations
WHERE user_id = $1 AND status = 'active'
FOR UPDATE`

	// status guard keeps completed rows immutable
	completeReservationSQL = `
UPDATE reservations SET end_time = $2, cost = $3, status = $4, updated_at = $5
WHERE id = $1 AND status = 'active'`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, insertReservationSQL,
		res.ID(),
		res.UserID(),
		pgconv.UUIDPtrToPgtype(res.SpotID()),
		res.LotID(),
		res.VehicleNumber().String(),
		res.StartTime(),
		res.Status().String(),
		res.CreatedAt(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) ExistsActiveByUser(ctx context.Context, userID uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsActiveReservationSQL, userID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check active reservation", err)
	}
	return exists, nil
}

func (r *ReservationRepository) LockActiveByUser(ctx context.Context, userID uuid.UUID) (*reservation.Reservation, error) {
	var row converter.ReservationRow
	if err := r.db.QueryRow(ctx, lockActiveReservationSQL, userID).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock active reservation", err)
	}

	res, err := converter.ReservationToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation row", err, infra.KindDBFailure)
	}
	return res, nil
}

func (r *ReservationRepository) Complete(ctx context.Context, res *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, completeReservationSQL,
		res.ID(),
		pgconv.TimePtrToPgtype(res.EndTime()),
		pgconv.DecimalPtrToNumeric(res.Cost()),
		res.Status().String(),
		res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
