package analytics

import (
	"sort"
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnknownLot labels history whose lot no longer exists.
const UnknownLot = "Unknown"

type UserSummary struct {
	TotalReservations     int
	CompletedReservations int
	Active                *ReservationSnapshot
	TotalSpent            decimal.Decimal
	TotalHours            decimal.Decimal
}

type LotCount struct {
	LotID   uuid.UUID
	LotName string
	Count   int
}

type StatusCount struct {
	Label string
	Count int
}

type UserCharts struct {
	DailyUsage      []DailyCount
	LotDistribution []LotCount
	StatusBreakdown []StatusCount
}

// ProjectUserSummary totals spend and hours over completed reservations only.
func ProjectUserSummary(s UserSnapshot) UserSummary {
	out := UserSummary{
		TotalReservations: len(s.Reservations),
		TotalSpent:        decimal.Zero,
		TotalHours:        decimal.Zero,
	}
	for i := range s.Reservations {
		r := s.Reservations[i]
		if !r.IsCompleted() {
			active := r
			out.Active = &active
			continue
		}
		out.CompletedReservations++
		if r.Cost != nil {
			out.TotalSpent = out.TotalSpent.Add(*r.Cost)
		}
		if r.EndTime != nil {
			out.TotalHours = out.TotalHours.Add(billing.Hours(r.StartTime, *r.EndTime))
		}
	}
	out.TotalSpent = out.TotalSpent.Round(reportPlaces)
	out.TotalHours = out.TotalHours.Round(reportPlaces)
	return out
}

// ProjectUserCharts orders the lot distribution by count, then lot name.
func ProjectUserCharts(s UserSnapshot, now time.Time) UserCharts {
	names := lotNames(s.Lots)
	days := windowDays(now)
	counts := make(map[string]int, len(days))
	perLot := make(map[uuid.UUID]int)
	var active, completed int

	for _, r := range s.Reservations {
		counts[dayKey(r.CreatedAt)]++
		perLot[r.LotID]++
		if r.IsCompleted() {
			completed++
		} else {
			active++
		}
	}

	out := UserCharts{
		DailyUsage:      make([]DailyCount, 0, len(days)),
		LotDistribution: make([]LotCount, 0, len(perLot)),
		StatusBreakdown: []StatusCount{
			{Label: reservation.StatusActive.Label(), Count: active},
			{Label: reservation.StatusCompleted.Label(), Count: completed},
		},
	}
	for _, d := range days {
		key := dayKey(d)
		out.DailyUsage = append(out.DailyUsage, DailyCount{Date: key, Count: counts[key]})
	}
	for lotID, n := range perLot {
		name, ok := names[lotID]
		if !ok {
			name = UnknownLot
		}
		out.LotDistribution = append(out.LotDistribution, LotCount{LotID: lotID, LotName: name, Count: n})
	}
	sort.Slice(out.LotDistribution, func(i, j int) bool {
		a, b := out.LotDistribution[i], out.LotDistribution[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.LotName < b.LotName
	})
	return out
}
