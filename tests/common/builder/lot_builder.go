//go:build unit || e2e

package builder

import (
	"time"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/spot"
	reqdto "vehicle-parking/internal/handler/dto/request"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	Code          string
	Name          string
	Address       string
	Pincode       string
	Price         decimal.Decimal
	NumberOfSpots int
	Now           time.Time
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		Code:          "A1",
		Name:          "Central Plaza",
		Address:       "12 MG Road",
		Pincode:       "560001",
		Price:         decimal.RequireFromString("40"),
		NumberOfSpots: 3,
		Now:           time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) Spec() lot.Spec {
	return lot.Spec{
		Code:          b.Code,
		Name:          b.Name,
		Address:       b.Address,
		Pincode:       b.Pincode,
		Price:         b.Price,
		NumberOfSpots: b.NumberOfSpots,
	}
}

func (b *LotBuilder) BuildDomain() (*lot.Lot, error) {
	return lot.NewLot(b.Spec(), b.Now)
}

// BuildWithSpots returns the lot together with its freshly created spots.
func (b *LotBuilder) BuildWithSpots() (*lot.Lot, []*spot.Spot, error) {
	l, err := b.BuildDomain()
	if err != nil {
		return nil, nil, err
	}
	spots, err := spot.NewSpotsForLot(l.ID(), l.NumberOfSpots(), b.Now)
	if err != nil {
		return nil, nil, err
	}
	return l, spots, nil
}

func (b *LotBuilder) BuildCreateRequestDTO() reqdto.CreateLotRequest {
	return reqdto.CreateLotRequest{
		Code:          b.Code,
		Name:          b.Name,
		Address:       b.Address,
		Pincode:       b.Pincode,
		Price:         b.Price,
		NumberOfSpots: b.NumberOfSpots,
	}
}

// BuildView returns an empty lot as the read side reports it.
func (b *LotBuilder) BuildView() *queries.LotView {
	return &queries.LotView{
		ID:             uuid.New(),
		Code:           b.Code,
		Name:           b.Name,
		Address:        b.Address,
		Pincode:        b.Pincode,
		Price:          b.Price,
		NumberOfSpots:  b.NumberOfSpots,
		AvailableSpots: b.NumberOfSpots,
		CreatedAt:      b.Now,
		UpdatedAt:      b.Now,
	}
}

// Fluent builder methods
func (b *LotBuilder) WithCode(code string) *LotBuilder {
	b.Code = code
	return b
}

func (b *LotBuilder) WithName(name string) *LotBuilder {
	b.Name = name
	return b
}

func (b *LotBuilder) WithAddress(address string) *LotBuilder {
	b.Address = address
	return b
}

func (b *LotBuilder) WithPincode(pincode string) *LotBuilder {
	b.Pincode = pincode
	return b
}

func (b *LotBuilder) WithPrice(price string) *LotBuilder {
	b.Price = decimal.RequireFromString(price)
	return b
}

func (b *LotBuilder) WithSpots(n int) *LotBuilder {
	b.NumberOfSpots = n
	return b
}
