package lot

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Lot struct {
	id            uuid.UUID
	code          Code
	name          string
	address       string
	pincode       Pincode
	price         Price
	numberOfSpots int
	createdAt     time.Time
	updatedAt     time.Time
}

type Spec struct {
	Code          string
	Name          string
	Address       string
	Pincode       string
	Price         decimal.Decimal
	NumberOfSpots int
}

// Patch carries the mutable fields. Code and spot count are immutable and have no patch field.
type Patch struct {
	Name    *string
	Address *string
	Pincode *string
	Price   *decimal.Decimal
}

func NewLot(spec Spec, now time.Time) (*Lot, error) {
	code, err := NewCode(spec.Code)
	if err != nil {
		return nil, err
	}
	name, err := newName(spec.Name)
	if err != nil {
		return nil, err
	}
	address, err := newAddress(spec.Address)
	if err != nil {
		return nil, err
	}
	pincode, err := NewPincode(spec.Pincode)
	if err != nil {
		return nil, err
	}
	price, err := NewPrice(spec.Price)
	if err != nil {
		return nil, err
	}
	if err := validateSpotCount(spec.NumberOfSpots); err != nil {
		return nil, err
	}

	return &Lot{
		id:            uuid.New(),
		code:          code,
		name:          name,
		address:       address,
		pincode:       pincode,
		price:         price,
		numberOfSpots: spec.NumberOfSpots,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructLot(
	id uuid.UUID,
	code, name, address, pincode string,
	price decimal.Decimal,
	numberOfSpots int,
	createdAt, updatedAt time.Time,
) *Lot {
	return &Lot{
		id:            id,
		code:          Code{value: code},
		name:          name,
		address:       address,
		pincode:       Pincode{value: pincode},
		price:         Price{value: price},
		numberOfSpots: numberOfSpots,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Apply validates every field of p before mutating anything.
func (l *Lot) Apply(p Patch, now time.Time) error {
	name, address, pincode, price := l.name, l.address, l.pincode, l.price

	var err error
	if p.Name != nil {
		if name, err = newName(*p.Name); err != nil {
			return err
		}
	}
	if p.Address != nil {
		if address, err = newAddress(*p.Address); err != nil {
			return err
		}
	}
	if p.Pincode != nil {
		if pincode, err = NewPincode(*p.Pincode); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if price, err = NewPrice(*p.Price); err != nil {
			return err
		}
	}

	l.name, l.address, l.pincode, l.price = name, address, pincode, price
	l.updatedAt = now
	return nil
}

// EnsureUnchanged rejects attempts to alter the code or the spot count.
// Values equal to the stored ones (after normalization) are accepted.
func (l *Lot) EnsureUnchanged(code *string, numberOfSpots *int) error {
	if code != nil {
		c, err := NewCode(*code)
		if err != nil || c != l.code {
			return ErrImmutableField
		}
	}
	if numberOfSpots != nil && *numberOfSpots != l.numberOfSpots {
		return ErrImmutableField
	}
	return nil
}

func (l *Lot) ID() uuid.UUID               { return l.id }
func (l *Lot) Code() Code                  { return l.code }
func (l *Lot) Name() string                { return l.name }
func (l *Lot) Address() string             { return l.address }
func (l *Lot) Pincode() Pincode            { return l.pincode }
func (l *Lot) Price() Price                { return l.price }
func (l *Lot) HourlyRate() decimal.Decimal { return l.price.Decimal() }
func (l *Lot) NumberOfSpots() int          { return l.numberOfSpots }
func (l *Lot) CreatedAt() time.Time        { return l.createdAt }
func (l *Lot) UpdatedAt() time.Time        { return l.updatedAt }
