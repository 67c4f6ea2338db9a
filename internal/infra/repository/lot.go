package repository

import (
	"context"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/repository/converter"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	insertLotSQL = `
INSERT INTO parking_lots (id, code, name, address, pincode, price, number_of_spots, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	updateLotSQL = `
UPDATE parking_lots SET name = $2, address = $3, pincode = $4, price = $5, updated_at = $6
WHERE id = $1`

	// spots and reservations go with the lot via ON DELETE CASCADE
	deleteLotSQL = `DELETE FROM parking_lots WHERE id = $1`

	findLotByIDSQL      = `SELECT ` + converter.LotColumns + ` FROM parking_lots WHERE id = $1`
	lockLotByIDSQL      = findLotByIDSQL + ` FOR UPDATE`
	shareLockLotByIDSQL = findLotByIDSQL + ` FOR SHARE`
)

type LotRepository struct {
	db db.DBTX
}

func NewLotRepository(db db.DBTX) *LotRepository {
	return &LotRepository{db: db}
}

func (r *LotRepository) Create(ctx context.Context, l *lot.Lot) error {
	_, err := r.db.Exec(ctx, insertLotSQL,
		l.ID(),
		l.Code().String(),
		l.Name(),
		l.Address(),
		l.Pincode().String(),
		pgconv.DecimalToNumeric(l.HourlyRate()),
		l.NumberOfSpots(),
		l.CreatedAt(),
		l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create parking lot", err)
	}
	return nil
}

func (r *LotRepository) Update(ctx context.Context, l *lot.Lot) error {
	tag, err := r.db.Exec(ctx, updateLotSQL,
		l.ID(),
		l.Name(),
		l.Address(),
		l.Pincode().String(),
		pgconv.DecimalToNumeric(l.HourlyRate()),
		l.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteLotSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete parking lot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("parking lot not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *LotRepository) FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	return r.findOne(ctx, "failed to find parking lot", findLotByIDSQL, id)
}

func (r *LotRepository) LockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	return r.findOne(ctx, "failed to lock parking lot", lockLotByIDSQL, id)
}

func (r *LotRepository) ShareLockByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	return r.findOne(ctx, "failed to share-lock parking lot", shareLockLotByIDSQL, id)
}

func (r *LotRepository) findOne(ctx context.Context, msg, query string, id uuid.UUID) (*lot.Lot, error) {
	var row converter.LotRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("parking lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}

	l, err := converter.LotToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid parking lot row", err, infra.KindDBFailure)
	}
	return l, nil
}
