package converter

import (
	"time"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const LotColumns = "id, code, name, address, pincode, price, number_of_spots, created_at, updated_at"

type LotRow struct {
	ID            uuid.UUID
	Code          string
	Name          string
	Address       string
	Pincode       string
	Price         pgtype.Numeric
	NumberOfSpots int32
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r *LotRow) ScanTargets() []any {
	return []any{&r.ID, &r.Code, &r.Name, &r.Address, &r.Pincode, &r.Price, &r.NumberOfSpots, &r.CreatedAt, &r.UpdatedAt}
}

func LotToDomain(row LotRow) (*lot.Lot, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	return lot.ReconstructLot(
		row.ID,
		row.Code, row.Name, row.Address, row.Pincode,
		price,
		int(row.NumberOfSpots),
		row.CreatedAt, row.UpdatedAt,
	), nil
}
