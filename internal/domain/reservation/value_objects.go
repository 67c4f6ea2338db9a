package reservation

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var ErrInvalidVehicleNumber = errors.New("vehicle number must look like MH12AB1234")

var vehicleNumberRegex = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z]{1,2}\d{4}$`)

// VehicleNumber is a normalized registration plate: two letters, two digits,
// one or two letters, four digits.
type VehicleNumber struct {
	value string
}

func NewVehicleNumber(s string) (VehicleNumber, error) {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		}
		// Anything else passes through so the pattern rejects non-ASCII letters.
		return r
	}, s)
	if !vehicleNumberRegex.MatchString(normalized) {
		return VehicleNumber{}, ErrInvalidVehicleNumber
	}
	return VehicleNumber{value: normalized}, nil
}

func (v VehicleNumber) String() string {
	return v.value
}
