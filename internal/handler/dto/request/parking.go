package request

import (
	"vehicle-parking/internal/pkg/patch"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookRequest struct {
	LotID         uuid.UUID `json:"lot_id" binding:"required"`
	VehicleNumber string    `json:"vehicle_number" binding:"required,max=20"`
}

type ListReservationsQuery struct {
	After string `form:"after"`
	Limit *int   `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListReservationsQuery) PageSize() int {
	return patch.Coalesce(q.Limit, queries.DefaultListLimit)
}
