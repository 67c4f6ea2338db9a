package spot

import (
	"sort"

	"github.com/google/uuid"
)

// Ledger is a point-in-time view over the spots of one lot.
type Ledger struct {
	lotID uuid.UUID
	spots []*Spot
}

func NewLedger(lotID uuid.UUID, spots []*Spot) *Ledger {
	sorted := make([]*Spot, 0, len(spots))
	for _, s := range spots {
		if s.lotID == lotID {
			sorted = append(sorted, s)
		}
	}
	SortForAllocation(sorted)
	return &Ledger{lotID: lotID, spots: sorted}
}

// SortForAllocation orders by position, then lexically by spot number.
// The first Available spot in this order is the one Book assigns.
func SortForAllocation(spots []*Spot) {
	sort.SliceStable(spots, func(i, j int) bool {
		if spots[i].position != spots[j].position {
			return spots[i].position < spots[j].position
		}
		return spots[i].number < spots[j].number
	})
}

func (l *Ledger) FirstAvailable() (*Spot, bool) {
	for _, s := range l.spots {
		if s.IsAvailable() {
			return s, true
		}
	}
	return nil, false
}

func (l *Ledger) Counts() (occupied, available int) {
	for _, s := range l.spots {
		if s.IsOccupied() {
			occupied++
		} else {
			available++
		}
	}
	return occupied, available
}

func (l *Ledger) HasOccupied() bool {
	occupied, _ := l.Counts()
	return occupied > 0
}

func (l *Ledger) Find(id uuid.UUID) (*Spot, bool) {
	for _, s := range l.spots {
		if s.id == id {
			return s, true
		}
	}
	return nil, false
}

func (l *Ledger) LotID() uuid.UUID { return l.lotID }
func (l *Ledger) Spots() []*Spot   { return l.spots }
func (l *Ledger) Len() int         { return len(l.spots) }
