package readstore

import (
	"context"

	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/repository/converter"
	"vehicle-parking/internal/pkg/pgconv"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

const (
	listLotsSQL    = `SELECT ` + converter.LotColumns + ` FROM parking_lots ORDER BY created_at, code`
	findLotByIDSQL = `SELECT ` + converter.LotColumns + ` FROM parking_lots WHERE id = $1`

	lotStatusesSQL = `
SELECT lot_id,
       count(*) FILTER (WHERE status = 'O'),
       count(*) FILTER (WHERE status = 'A')
FROM parking_spots
WHERE lot_id = ANY($1)
GROUP BY lot_id`

	spotViewColumns = `s.id, s.lot_id, l.code, s.position, s.spot_number, s.label, s.status, s.created_at`

	listSpotViewsSQL = `
SELECT ` + spotViewColumns + `
FROM parking_spots s JOIN parking_lots l ON l.id = s.lot_id
WHERE s.lot_id = $1
ORDER BY s.position, s.spot_number`

	findSpotViewSQL = `
SELECT ` + spotViewColumns + `
FROM parking_spots s JOIN parking_lots l ON l.id = s.lot_id
WHERE s.id = $1`
)

type LotReadStore struct {
	db db.DBTX
}

func NewLotReadStore(db db.DBTX) *LotReadStore {
	return &LotReadStore{db: db}
}

func (r *LotReadStore) ListLots(ctx context.Context) ([]*queries.LotView, error) {
	rows, err := r.db.Query(ctx, listLotsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	defer rows.Close()

	var result []*queries.LotView
	for rows.Next() {
		var row converter.LotRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lot", err)
		}
		v, err := lotRowToView(row)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list lots", err)
	}
	return result, nil
}

func (r *LotReadStore) FindLotByID(ctx context.Context, id uuid.UUID) (*queries.LotView, error) {
	var row converter.LotRow
	if err := r.db.QueryRow(ctx, findLotByIDSQL, id).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("lot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lot by ID", err)
	}
	return lotRowToView(row)
}

// LotStatuses returns an entry for every requested lot, zero counts included.
func (r *LotReadStore) LotStatuses(ctx context.Context, lotIDs []uuid.UUID) (map[uuid.UUID]queries.LotStatus, error) {
	result := make(map[uuid.UUID]queries.LotStatus, len(lotIDs))
	for _, id := range lotIDs {
		result[id] = queries.LotStatus{}
	}
	if len(lotIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, lotStatusesSQL, lotIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count spots", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			lotID               uuid.UUID
			occupied, available int64
		)
		if err := rows.Scan(&lotID, &occupied, &available); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot counts", err)
		}
		result[lotID] = queries.LotStatus{Occupied: int(occupied), Available: int(available)}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to count spots", err)
	}
	return result, nil
}

func (r *LotReadStore) ListSpots(ctx context.Context, lotID uuid.UUID) ([]*queries.SpotView, error) {
	rows, err := r.db.Query(ctx, listSpotViewsSQL, lotID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	defer rows.Close()

	result := []*queries.SpotView{}
	for rows.Next() {
		var row spotViewRow
		if err := rows.Scan(row.scanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan spot", err)
		}
		result = append(result, row.toView())
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list spots", err)
	}
	return result, nil
}

func (r *LotReadStore) FindSpotByID(ctx context.Context, spotID uuid.UUID) (*queries.SpotView, error) {
	var row spotViewRow
	if err := r.db.QueryRow(ctx, findSpotViewSQL, spotID).Scan(row.scanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("spot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find spot by ID", err)
	}
	return row.toView(), nil
}

type spotViewRow struct {
	converter.SpotRow
	LotCode string
}

func (r *spotViewRow) scanTargets() []any {
	return []any{&r.ID, &r.LotID, &r.LotCode, &r.Position, &r.SpotNumber, &r.Label, &r.Status, &r.CreatedAt}
}

func (r *spotViewRow) toView() *queries.SpotView {
	status := spot.Status(r.Status)
	return &queries.SpotView{
		ID:           r.ID,
		LotID:        r.LotID,
		LotCode:      r.LotCode,
		Position:     int(r.Position),
		SpotNumber:   r.SpotNumber,
		Label:        r.Label,
		DisplayLabel: spot.DisplayLabel(r.LotCode, r.Label),
		Status:       status.String(),
		StatusLabel:  status.Label(),
		CreatedAt:    r.CreatedAt,
	}
}

func lotRowToView(row converter.LotRow) (*queries.LotView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid lot price", err, infra.KindDBFailure)
	}
	return &queries.LotView{
		ID:            row.ID,
		Code:          row.Code,
		Name:          row.Name,
		Address:       row.Address,
		Pincode:       row.Pincode,
		Price:         price,
		NumberOfSpots: int(row.NumberOfSpots),
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}, nil
}
