package repository

import (
	"context"
	"fmt"
	"strings"

	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/repository/converter"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	spotInsertColumns = 7

	// SKIP LOCKED lets concurrent bookings in one lot take different spots
	// instead of queueing behind the same row.
	lockFirstAvailableSpotSQL = `
SELECT ` + converter.SpotColumns + ` FROM parking_spots
WHERE lot_id = $1 AND status = 'A'
ORDER BY position, spot_number
LIMIT 1
FOR UPDATE SKIP LOCKED`

	lockSpotByIDSQL   = `SELECT ` + converter.SpotColumns + ` FROM parking_spots WHERE id = $1 FOR UPDATE`
	listSpotsByLotSQL = `SELECT ` + converter.SpotColumns + ` FROM parking_spots WHERE lot_id = $1 ORDER BY position, spot_number`
	updateSpotSQL     = `UPDATE parking_spots SET status = $2 WHERE id = $1`
	deleteSpotSQL     = `DELETE FROM parking_spots WHERE id = $1`
)

type SpotRepository struct {
	db db.DBTX
}

func NewSpotRepository(db db.DBTX) *SpotRepository {
	return &SpotRepository{db: db}
}

// CreateBatch inserts all spots with one multi-row INSERT.
func (r *SpotRepository) CreateBatch(ctx context.Context, spots []*spot.Spot) error {
	if len(spots) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO parking_spots (id, lot_id, position, spot_number, label, status, created_at) VALUES ")
	args := make([]any, 0, len(spots)*spotInsertColumns)
	for i, s := range spots {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := i * spotInsertColumns
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d)", n+1, n+2, n+3, n+4, n+5, n+6, n+7)
		args = append(args, s.ID(), s.LotID(), s.Position(), s.Number(), s.Label(), s.Status().String(), s.CreatedAt())
	}

	if _, err := r.db.Exec(ctx, sb.String(), args...); err != nil {
		return infra.WrapRepoErr("failed to create parking spots", err)
	}
	return nil
}

func (r *SpotRepository) LockFirstAvailable(ctx context.Context, lotID uuid.UUID) (*spot.Spot, error) {
	return r.findOne(ctx, "failed to lock available spot", lockFirstAvailableSpotSQL, lotID)
}

func (r *SpotRepository) LockByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.findOne(ctx, "failed to lock spot", lockSpotByIDSQL, id)
}

func (r *SpotRepository) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*spot.Spot, error) {
	rows, err := r.db.Query(ctx, listSpotsByLotSQL, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	defer rows.Close()

	var result []*spot.Spot
	for rows.Next() {
		var row converter.SpotRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot", err)
		}
		s, err := converter.SpotToDomain(row)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid spot row", err, infra.KindDBFailure)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	return result, nil
}

func (r *SpotRepository) UpdateStatus(ctx context.Context, s *spot.Spot) error {
	tag, err := r.db.Exec(ctx, updateSpotSQL, s.ID(), s.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to update spot status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteSpotSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete spot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *SpotRepository) findOne(ctx context.Context, msg, query string, id uuid.UUID) (*spot.Spot, error) {
	var row converter.SpotRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	s, err := converter.SpotToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid spot row", err, infra.KindDBFailure)
	}
	return s, nil
}
