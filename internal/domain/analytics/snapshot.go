// Package analytics projects summaries and chart series from point-in-time
// snapshots of lots, spots and reservations. Nothing here touches storage;
// every call recomputes from the full history it is given.
package analytics

import (
	"time"

	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WindowDays is the length of the trailing window used by daily series and
// the "recent reservations" counter.
const WindowDays = 7

// Reported money and hour totals carry two fractional digits.
const reportPlaces int32 = 2

type LotSnapshot struct {
	ID        uuid.UUID
	Code      string
	Name      string
	CreatedAt time.Time
}

type SpotSnapshot struct {
	ID     uuid.UUID
	LotID  uuid.UUID
	Status spot.Status
}

type ReservationSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	LotID     uuid.UUID
	StartTime time.Time
	EndTime   *time.Time
	Cost      *decimal.Decimal
	Status    reservation.Status
	CreatedAt time.Time
}

func (r ReservationSnapshot) IsCompleted() bool {
	return r.Status == reservation.StatusCompleted
}

// Snapshot is everything the admin projections read. UserCount counts
// accounts with role user only.
type Snapshot struct {
	Lots         []LotSnapshot
	Spots        []SpotSnapshot
	Reservations []ReservationSnapshot
	UserCount    int
}

// UserSnapshot is one user's reservation history plus the lots it touches.
type UserSnapshot struct {
	UserID       uuid.UUID
	Lots         []LotSnapshot
	Reservations []ReservationSnapshot
}

type UserProfile struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// DigestSnapshot feeds the scheduled digests. Users holds role user accounts
// only.
type DigestSnapshot struct {
	Users        []UserProfile
	Lots         []LotSnapshot
	Reservations []ReservationSnapshot
}

// windowDays returns the UTC midnights of the trailing window, oldest first.
func windowDays(now time.Time) []time.Time {
	today := startOfDay(now)
	days := make([]time.Time, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		days = append(days, today.AddDate(0, 0, -i))
	}
	return days
}

func startOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

func dayKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

func lotNames(lots []LotSnapshot) map[uuid.UUID]string {
	names := make(map[uuid.UUID]string, len(lots))
	for _, l := range lots {
		names[l.ID] = l.Name
	}
	return names
}
