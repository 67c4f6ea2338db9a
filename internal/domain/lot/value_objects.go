package lot

import (
	"errors"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCode      = errors.New("lot code must be 1-50 alphanumeric characters")
	ErrInvalidName      = errors.New("lot name is required (max 120 characters)")
	ErrInvalidAddress   = errors.New("lot address is required (max 255 characters)")
	ErrInvalidPincode   = errors.New("pincode must be exactly 6 digits")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrPriceTooLarge    = errors.New("price cannot exceed 99999999.99")
	ErrInvalidSpotCount = errors.New("number of spots must be between 1 and 1000")
	ErrImmutableField   = errors.New("lot code and number of spots cannot change after creation")
)

const (
	MaxSpots         = 1000
	maxCodeLength    = 50
	maxNameLength    = 120
	maxAddressLength = 255
	pricePlaces      = 2
)

// maxPrice is the largest rate the parking_lots.price NUMERIC(10,2) column holds.
var maxPrice = decimal.New(9999999999, -pricePlaces)

var (
	codeRegex    = regexp.MustCompile(`^[A-Z0-9]+$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

// Code is the human lot code. Upper-cased on input and immutable after creation.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 0 || len(s) > maxCodeLength || !codeRegex.MatchString(s) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: s}, nil
}

func (c Code) String() string { return c.value }

type Pincode struct {
	value string
}

func NewPincode(s string) (Pincode, error) {
	s = strings.TrimSpace(s)
	if !pincodeRegex.MatchString(s) {
		return Pincode{}, ErrInvalidPincode
	}
	return Pincode{value: s}, nil
}

func (p Pincode) String() string { return p.value }

// Price is the hourly rate, kept to two fractional digits.
type Price struct {
	value decimal.Decimal
}

func NewPrice(d decimal.Decimal) (Price, error) {
	if d.IsNegative() {
		return Price{}, ErrNegativePrice
	}
	rounded := d.Round(pricePlaces)
	if rounded.GreaterThan(maxPrice) {
		return Price{}, ErrPriceTooLarge
	}
	return Price{value: rounded}, nil
}

func (p Price) Decimal() decimal.Decimal { return p.value }

func newName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxNameLength {
		return "", ErrInvalidName
	}
	return s, nil
}

func newAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxAddressLength {
		return "", ErrInvalidAddress
	}
	return s, nil
}

func validateSpotCount(n int) error {
	if n < 1 || n > MaxSpots {
		return ErrInvalidSpotCount
	}
	return nil
}
