package readstore

import (
	"context"
	"time"

	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/pkg/pgconv"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	reservationViewSelect = `
SELECT r.id, r.user_id, r.spot_id, s.spot_number, s.label,
       r.lot_id, l.code, l.name, l.price,
       r.vehicle_number, r.start_time, r.end_time, r.cost, r.status, r.created_at, r.updated_at
FROM reservations r
JOIN parking_lots l ON l.id = r.lot_id
LEFT JOIN parking_spots s ON s.id = r.spot_id`

	listReservationsFirstPageSQL = reservationViewSelect + `
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

	listReservationsKeysetSQL = reservationViewSelect + `
WHERE r.user_id = $1 AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

	findActiveByUserSQL = reservationViewSelect + ` WHERE r.user_id = $1 AND r.status = 'active'`
	findActiveBySpotSQL = reservationViewSelect + ` WHERE r.spot_id = $1 AND r.status = 'active'`
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

// ListByUser returns newest first. A nil key starts from the top.
func (r *ReservationReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.PageKey, limit int) ([]*queries.ReservationView, error) {
	query, args := listReservationsFirstPageSQL, []any{userID, limit}
	if after != nil {
		query, args = listReservationsKeysetSQL, []any{userID, after.CreatedAt, after.ID, limit}
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := []*queries.ReservationView{}
	for rows.Next() {
		var row reservationViewRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation", err)
		}
		v, err := row.toView()
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return result, nil
}

func (r *ReservationReadStore) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.ReservationView, error) {
	return r.findOne(ctx, findActiveByUserSQL, userID)
}

func (r *ReservationReadStore) FindActiveBySpot(ctx context.Context, spotID uuid.UUID) (*queries.ReservationView, error) {
	return r.findOne(ctx, findActiveBySpotSQL, spotID)
}

func (r *ReservationReadStore) findOne(ctx context.Context, query string, id uuid.UUID) (*queries.ReservationView, error) {
	var row reservationViewRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.scanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("active reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find active reservation", err)
	}
	return row.toView()
}

type reservationViewRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SpotID        pgtype.UUID
	SpotNumber    pgtype.Text
	SpotLabel     pgtype.Text
	LotID         uuid.UUID
	LotCode       string
	LotName       string
	HourlyRate    pgtype.Numeric
	VehicleNumber string
	StartTime     time.Time
	EndTime       pgtype.Timestamptz
	Cost          pgtype.Numeric
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *reservationViewRow) scanTargets() []any {
	return []any{
		&r.ID, &r.UserID, &r.SpotID, &r.SpotNumber, &r.SpotLabel,
		&r.LotID, &r.LotCode, &r.LotName, &r.HourlyRate,
		&r.VehicleNumber, &r.StartTime, &r.EndTime, &r.Cost, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
}

func (r *reservationViewRow) toView() (*queries.ReservationView, error) {
	rate, err := pgconv.DecimalFromNumeric(r.HourlyRate)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lot price", err, infra.KindDBFailure)
	}
	cost, err := pgconv.DecimalPtrFromNumeric(r.Cost)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation cost", err, infra.KindDBFailure)
	}

	return &queries.ReservationView{
		ID:            r.ID,
		UserID:        r.UserID,
		SpotID:        pgconv.UUIDPtrFromPgtype(r.SpotID),
		SpotNumber:    pgconv.StringPtrFromPgtype(r.SpotNumber),
		SpotLabel:     pgconv.StringPtrFromPgtype(r.SpotLabel),
		LotID:         r.LotID,
		LotCode:       r.LotCode,
		LotName:       r.LotName,
		HourlyRate:    rate,
		VehicleNumber: r.VehicleNumber,
		StartTime:     r.StartTime,
		EndTime:       pgconv.TimePtrFromPgtype(r.EndTime),
		Cost:          cost,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}
