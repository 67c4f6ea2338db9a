package converter

import (
	"time"

	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const ReservationColumns = "id, user_id, spot_id, lot_id, vehicle_number, start_time, end_time, cost, status, created_at, updated_at"

type ReservationRow struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SpotID        pgtype.UUID
	LotID         uuid.UUID
	VehicleNumber string
	StartTime     time.Time
	EndTime       pgtype.Timestamptz
	Cost          pgtype.Numeric
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *ReservationRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.UserID, &r.SpotID, &r.LotID, &r.VehicleNumber,
		&r.StartTime, &r.EndTime, &r.Cost, &r.Status, &r.CreatedAt, &r.UpdatedAt,
	}
}

func ReservationToDomain(row ReservationRow) (*reservation.Reservation, error) {
	vehicle, err := reservation.NewVehicleNumber(row.VehicleNumber)
	if err != nil {
		return nil, err
	}
	status := reservation.Status(row.Status)
	if !status.IsValid() {
		return nil, reservation.ErrInvalidStatus
	}
	cost, err := pgconv.DecimalPtrFromNumeric(row.Cost)
	if err != nil {
		return nil, err
	}

	return reservation.ReconstructReservation(
		row.ID, row.UserID,
		pgconv.UUIDPtrFromPgtype(row.SpotID),
		row.LotID,
		vehicle,
		row.StartTime,
		pgconv.TimePtrFromPgtype(row.EndTime),
		cost,
		status,
		row.CreatedAt, row.UpdatedAt,
	), nil
}
