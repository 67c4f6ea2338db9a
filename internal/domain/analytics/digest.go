package analytics

import (
	"sort"
	"time"

	"vehicle-parking/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// InactivityDays without a new reservation makes a user due a reminder.
	InactivityDays = 7
	// NewLotWindow is how recent a lot must be to be announced.
	NewLotWindow = 24 * time.Hour
)

// MonthlyReport covers reservations created in [PeriodStart, PeriodEnd).
// MostUsedLot is empty when the month had no reservations.
type MonthlyReport struct {
	Month                 string
	PeriodStart           time.Time
	PeriodEnd             time.Time
	TotalReservations     int
	CompletedReservations int
	TotalSpent            decimal.Decimal
	TotalHours            decimal.Decimal
	MostUsedLot           string
}

type UserMonthlyReport struct {
	User   UserProfile
	Report MonthlyReport
}

// Reminder is one user's daily nudge. DaysSinceLastReservation is nil for
// users who never booked.
type Reminder struct {
	User                     UserProfile
	Inactive                 bool
	DaysSinceLastReservation *int
	NewLots                  []string
}

type ReminderDigest struct {
	NewLots   []string
	Reminders []Reminder
}

// ReportPeriod is the calendar month before now, in UTC.
func ReportPeriod(now time.Time) (start, end time.Time) {
	u := now.UTC()
	end = time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return end.AddDate(0, -1, 0), end
}

// ProjectMonthlyReport summarizes the previous calendar month. Spend and
// hours come from completed reservations; the most used lot breaks ties by
// name.
func ProjectMonthlyReport(s UserSnapshot, now time.Time) MonthlyReport {
	start, end := ReportPeriod(now)
	out := MonthlyReport{
		Month:       start.Format("2006-01"),
		PeriodStart: start,
		PeriodEnd:   end,
		TotalSpent:  decimal.Zero,
		TotalHours:  decimal.Zero,
	}

	names := lotNames(s.Lots)
	perLot := make(map[string]int)
	for _, r := range s.Reservations {
		if r.CreatedAt.Before(start) || !r.CreatedAt.Before(end) {
			continue
		}
		out.TotalReservations++
		name, ok := names[r.LotID]
		if !ok {
			name = UnknownLot
		}
		perLot[name]++

		if !r.IsCompleted() {
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

	best := 0
	for name, n := range perLot {
		if n > best || (n == best && name < out.MostUsedLot) {
			best, out.MostUsedLot = n, name
		}
	}
	out.TotalSpent = out.TotalSpent.Round(reportPlaces)
	out.TotalHours = out.TotalHours.Round(reportPlaces)
	return out
}

// ProjectMonthlyReports builds a report for every user, including users with
// an empty month, ordered by username.
func ProjectMonthlyReports(s DigestSnapshot, now time.Time) []UserMonthlyReport {
	byUser := make(map[uuid.UUID][]ReservationSnapshot, len(s.Users))
	for _, r := range s.Reservations {
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	out := make([]UserMonthlyReport, 0, len(s.Users))
	for _, u := range sortedUsers(s.Users) {
		report := ProjectMonthlyReport(UserSnapshot{
			UserID:       u.ID,
			Lots:         s.Lots,
			Reservations: byUser[u.ID],
		}, now)
		out = append(out, UserMonthlyReport{User: u, Report: report})
	}
	return out
}

// ReminderCandidates picks users with no reservation created in the last
// InactivityDays, or everyone when a lot opened within NewLotWindow.
func ReminderCandidates(s DigestSnapshot, now time.Time) ReminderDigest {
	out := ReminderDigest{NewLots: []string{}, Reminders: []Reminder{}}

	lots := append([]LotSnapshot(nil), s.Lots...)
	sort.SliceStable(lots, func(i, j int) bool { return lots[i].CreatedAt.Before(lots[j].CreatedAt) })
	since := now.Add(-NewLotWindow)
	for _, l := range lots {
		if !l.CreatedAt.Before(since) {
			out.NewLots = append(out.NewLots, l.Name)
		}
	}

	last := make(map[uuid.UUID]time.Time, len(s.Users))
	for _, r := range s.Reservations {
		if t, ok := last[r.UserID]; !ok || r.CreatedAt.After(t) {
			last[r.UserID] = r.CreatedAt
		}
	}

	cutoff := now.AddDate(0, 0, -InactivityDays)
	for _, u := range sortedUsers(s.Users) {
		rem := Reminder{User: u, NewLots: out.NewLots}
		t, booked := last[u.ID]
		if booked {
			days := int(now.Sub(t) / (24 * time.Hour))
			rem.DaysSinceLastReservation = &days
		}
		rem.Inactive = !booked || t.Before(cutoff)
		if !rem.Inactive && len(out.NewLots) == 0 {
			continue
		}
		out.Reminders = append(out.Reminders, rem)
	}
	return out
}

func sortedUsers(users []UserProfile) []UserProfile {
	out := append([]UserProfile(nil), users...)
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
