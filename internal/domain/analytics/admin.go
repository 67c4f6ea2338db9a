package analytics

import (
	"time"

	"vehicle-parking/internal/domain/spot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AdminSummary struct {
	TotalLots          int
	TotalSpots         int
	AvailableSpots     int
	OccupiedSpots      int
	TotalUsers         int
	TotalReservations  int
	ActiveReservations int
	TotalRevenue       decimal.Decimal
	RecentReservations int
}

type DailyCount struct {
	Date  string
	Count int
}

type DailyRevenue struct {
	Date    string
	Revenue decimal.Decimal
}

type LotOccupancy struct {
	LotID     uuid.UUID
	LotName   string
	Occupied  int
	Available int
}

type LotRevenue struct {
	LotID   uuid.UUID
	LotName string
	Revenue decimal.Decimal
}

type AdminCharts struct {
	DailyReservations []DailyCount
	DailyRevenue      []DailyRevenue
	LotOccupancy      []LotOccupancy
	LotRevenue        []LotRevenue
}

// ProjectAdminSummary counts recent reservations over the rolling
// WindowDays*24h before now, not calendar days.
func ProjectAdminSummary(s Snapshot, now time.Time) AdminSummary {
	out := AdminSummary{
		TotalLots:         len(s.Lots),
		TotalSpots:        len(s.Spots),
		TotalUsers:        s.UserCount,
		TotalReservations: len(s.Reservations),
		TotalRevenue:      decimal.Zero,
	}
	for _, sp := range s.Spots {
		if sp.Status == spot.StatusOccupied {
			out.OccupiedSpots++
		} else {
			out.AvailableSpots++
		}
	}

	since := now.Add(-WindowDays * 24 * time.Hour)
	for _, r := range s.Reservations {
		if r.IsCompleted() {
			if r.Cost != nil {
				out.TotalRevenue = out.TotalRevenue.Add(*r.Cost)
			}
		} else {
			out.ActiveReservations++
		}
		if !r.CreatedAt.Before(since) {
			out.RecentReservations++
		}
	}
	out.TotalRevenue = out.TotalRevenue.Round(reportPlaces)
	return out
}

// ProjectAdminCharts buckets reservations by the UTC day they were created.
// Daily revenue only counts completed reservations. Lots keep the input order.
func ProjectAdminCharts(s Snapshot, now time.Time) AdminCharts {
	days := windowDays(now)
	counts := make(map[string]int, len(days))
	revenue := make(map[string]decimal.Decimal, len(days))
	perLotRevenue := make(map[uuid.UUID]decimal.Decimal, len(s.Lots))

	for _, r := range s.Reservations {
		key := dayKey(r.CreatedAt)
		counts[key]++
		if r.IsCompleted() && r.Cost != nil {
			revenue[key] = revenue[key].Add(*r.Cost)
			perLotRevenue[r.LotID] = perLotRevenue[r.LotID].Add(*r.Cost)
		}
	}

	out := AdminCharts{
		DailyReservations: make([]DailyCount, 0, len(days)),
		DailyRevenue:      make([]DailyRevenue, 0, len(days)),
		LotOccupancy:      make([]LotOccupancy, 0, len(s.Lots)),
		LotRevenue:        make([]LotRevenue, 0, len(s.Lots)),
	}
	for _, d := range days {
		key := dayKey(d)
		out.DailyReservations = append(out.DailyReservations, DailyCount{Date: key, Count: counts[key]})
		out.DailyRevenue = append(out.DailyRevenue, DailyRevenue{Date: key, Revenue: revenue[key].Round(reportPlaces)})
	}

	occupied := make(map[uuid.UUID]int, len(s.Lots))
	total := make(map[uuid.UUID]int, len(s.Lots))
	for _, sp := range s.Spots {
		total[sp.LotID]++
		if sp.Status == spot.StatusOccupied {
			occupied[sp.LotID]++
		}
	}
	for _, l := range s.Lots {
		out.LotOccupancy = append(out.LotOccupancy, LotOccupancy{
			LotID:     l.ID,
			LotName:   l.Name,
			Occupied:  occupied[l.ID],
			Available: total[l.ID] - occupied[l.ID],
		})
		out.LotRevenue = append(out.LotRevenue, LotRevenue{
			LotID:   l.ID,
			LotName: l.Name,
			Revenue: perLotRevenue[l.ID].Round(reportPlaces),
		})
	}
	return out
}
