package converter

import (
	"fmt"
	"time"

	"vehicle-parking/internal/domain/spot"

	"github.com/google/uuid"
)

const SpotColumns = "id, lot_id, position, spot_number, label, status, created_at"

type SpotRow struct {
	ID         uuid.UUID
	LotID      uuid.UUID
	Position   int32
	SpotNumber string
	Label      string
	Status     string
	CreatedAt  time.Time
}

func (r *SpotRow) ScanTargets() []any {
	return []any{&r.ID, &r.LotID, &r.Position, &r.SpotNumber, &r.Label, &r.Status, &r.CreatedAt}
}

func SpotToDomain(row SpotRow) (*spot.Spot, error) {
	status := spot.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid spot status %q", row.Status)
	}
	return spot.ReconstructSpot(row.ID, row.LotID, int(row.Position), row.SpotNumber, row.Label, status, row.CreatedAt), nil
}
