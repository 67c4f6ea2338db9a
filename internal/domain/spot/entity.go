package spot

import (
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSpotOccupied    = errors.New("spot is occupied")
	ErrSpotNotOccupied = errors.New("spot is not occupied")
	ErrInvalidPosition = errors.New("spot position must be positive")
)

// Spots are laid out in rows of ten for display labels (A1..A10, B1..).
const rowWidth = 10

// Spot status only changes through Occupy/Vacate, which the allocation
// engine pairs with a reservation write in the same unit of work.
type Spot struct {
	id        uuid.UUID
	lotID     uuid.UUID
	position  int
	number    string
	label     string
	status    Status
	createdAt time.Time
}

func NewSpot(lotID uuid.UUID, position int, now time.Time) (*Spot, error) {
	if position < 1 {
		return nil, ErrInvalidPosition
	}
	return &Spot{
		id:        uuid.New(),
		lotID:     lotID,
		position:  position,
		number:    strconv.Itoa(position),
		label:     Label(position),
		status:    StatusAvailable,
		createdAt: now,
	}, nil
}

// NewSpotsForLot creates positions 1..n, all Available.
func NewSpotsForLot(lotID uuid.UUID, n int, now time.Time) ([]*Spot, error) {
	spots := make([]*Spot, 0, n)
	for pos := 1; pos <= n; pos++ {
		s, err := NewSpot(lotID, pos, now)
		if err != nil {
			return nil, err
		}
		spots = append(spots, s)
	}
	return spots, nil
}

func ReconstructSpot(id, lotID uuid.UUID, position int, number, label string, status Status, createdAt time.Time) *Spot {
	return &Spot{
		id:        id,
		lotID:     lotID,
		position:  position,
		number:    number,
		label:     label,
		status:    status,
		createdAt: createdAt,
	}
}

func (s *Spot) Occupy() error {
	if s.status == StatusOccupied {
		return ErrSpotOccupied
	}
	s.status = StatusOccupied
	return nil
}

func (s *Spot) Vacate() error {
	if s.status != StatusOccupied {
		return ErrSpotNotOccupied
	}
	s.status = StatusAvailable
	return nil
}

func (s *Spot) EnsureDeletable() error {
	if s.status == StatusOccupied {
		return ErrSpotOccupied
	}
	return nil
}

func (s *Spot) IsAvailable() bool { return s.status == StatusAvailable }
func (s *Spot) IsOccupied() bool  { return s.status == StatusOccupied }

func (s *Spot) ID() uuid.UUID        { return s.id }
func (s *Spot) LotID() uuid.UUID     { return s.lotID }
func (s *Spot) Position() int        { return s.position }
func (s *Spot) Number() string       { return s.number }
func (s *Spot) Label() string        { return s.label }
func (s *Spot) Status() Status       { return s.status }
func (s *Spot) CreatedAt() time.Time { return s.createdAt }

// Label renders a 1-based position as row letters plus column, e.g. 1 -> "A1", 12 -> "B2", 261 -> "AA1".
func Label(position int) string {
	if position < 1 {
		return ""
	}
	row := (position - 1) / rowWidth
	col := (position-1)%rowWidth + 1
	return rowLetters(row) + strconv.Itoa(col)
}

func rowLetters(row int) string {
	var b []byte
	for n := row + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

// DisplayLabel prefixes the row/column label with the lot code, e.g. "A1-B3".
func DisplayLabel(lotCode, label string) string {
	return lotCode + "-" + label
}
