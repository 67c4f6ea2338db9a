package request

import (
	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/pkg/patch"
	"vehicle-parking/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

// Price accepts a JSON number or a decimal string.
type CreateLotRequest struct {
	Code          string          `json:"code" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Address       string          `json:"address" binding:"required"`
	Pincode       string          `json:"pincode" binding:"required"`
	Price         decimal.Decimal `json:"price"`
	NumberOfSpots int             `json:"number_of_spots" binding:"required,min=1"`
}

func (r *CreateLotRequest) ToSpec() lot.Spec {
	return lot.Spec{
		Code:          r.Code,
		Name:          r.Name,
		Address:       r.Address,
		Pincode:       r.Pincode,
		Price:         r.Price,
		NumberOfSpots: r.NumberOfSpots,
	}
}

type UpdateLotRequest struct {
	Code          *string          `json:"code"`
	NumberOfSpots *int             `json:"number_of_spots"`
	Name          *string          `json:"name"`
	Address       *string          `json:"address"`
	Pincode       *string          `json:"pincode"`
	Price         *decimal.Decimal `json:"price"`
}

func (r *UpdateLotRequest) ToInput() commands.UpdateLotInput {
	return commands.UpdateLotInput{
		Code:          r.Code,
		NumberOfSpots: r.NumberOfSpots,
		Name:          patch.TrimmedOrNil(r.Name),
		Address:       patch.TrimmedOrNil(r.Address),
		Pincode:       patch.TrimmedOrNil(r.Pincode),
		Price:         r.Price,
	}
}
