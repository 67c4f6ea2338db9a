package response

import (
	"time"

	"vehicle-parking/internal/domain/analytics"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type AdminSummaryResponse struct {
	TotalLots          int             `json:"total_lots"`
	TotalSpots         int             `json:"total_spots"`
	AvailableSpots     int             `json:"available_spots"`
	OccupiedSpots      int             `json:"occupied_spots"`
	TotalUsers         int             `json:"total_users"`
	TotalReservations  int             `json:"total_reservations"`
	ActiveReservations int             `json:"active_reservations"`
	TotalRevenue       decimal.Decimal `json:"total_revenue"`
	RecentReservations int             `json:"recent_reservations"`
}

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DailyRevenueResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type LotOccupancyResponse struct {
	LotID     uuid.UUID `json:"lot_id"`
	LotName   string    `json:"lot_name"`
	Occupied  int       `json:"occupied"`
	Available int       `json:"available"`
}

type LotRevenueResponse struct {
	LotID   uuid.UUID       `json:"lot_id"`
	LotName string          `json:"lot_name"`
	Revenue decimal.Decimal `json:"revenue"`
}

type AdminChartsResponse struct {
	DailyReservations []DailyCountResponse   `json:"daily_reservations"`
	DailyRevenue      []DailyRevenueResponse `json:"daily_revenue"`
	LotOccupancy      []LotOccupancyResponse `json:"lot_occupancy"`
	LotRevenue        []LotRevenueResponse   `json:"lot_revenue"`
}

type ActiveSnapshotResponse struct {
	ID        uuid.UUID `json:"id"`
	LotID     uuid.UUID `json:"lot_id"`
	StartTime time.Time `json:"start_time"`
	Status    string    `json:"status"`
}

type UserSummaryResponse struct {
	TotalReservations     int                     `json:"total_reservations"`
	CompletedReservations int                     `json:"completed_reservations"`
	ActiveReservation     *ActiveSnapshotResponse `json:"active_reservation"`
	TotalSpent            decimal.Decimal         `json:"total_spent"`
	TotalHours            decimal.Decimal         `json:"total_hours"`
}

type LotCountResponse struct {
	LotID   uuid.UUID `json:"lot_id"`
	LotName string    `json:"lot_name"`
	Count   int       `json:"count"`
}

type StatusCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type UserChartsResponse struct {
	DailyUsage      []DailyCountResponse  `json:"daily_usage"`
	LotDistribution []LotCountResponse    `json:"lot_distribution"`
	StatusBreakdown []StatusCountResponse `json:"status_breakdown"`
}

type MonthlyReportResponse struct {
	Month                 string          `json:"month"`
	PeriodStart           time.Time       `json:"period_start"`
	PeriodEnd             time.Time       `json:"period_end"`
	TotalReservations     int             `json:"total_reservations"`
	CompletedReservations int             `json:"completed_reservations"`
	TotalSpent            decimal.Decimal `json:"total_spent"`
	TotalHours            decimal.Decimal `json:"total_hours"`
	MostUsedLot           string          `json:"most_used_lot"`
}

type RecipientResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type UserMonthlyReportResponse struct {
	User   RecipientResponse     `json:"user"`
	Report MonthlyReportResponse `json:"report"`
}

type ReminderResponse struct {
	User                     RecipientResponse `json:"user"`
	Inactive                 bool              `json:"inactive"`
	DaysSinceLastReservation *int              `json:"days_since_last_reservation"`
	NewLots                  []string          `json:"new_lots"`
}

type ReminderDigestResponse struct {
	NewLots   []string           `json:"new_lots"`
	Reminders []ReminderResponse `json:"reminders"`
}

func FromAdminSummary(s analytics.AdminSummary) (*AdminSummaryResponse, error) {
	return copyTo[AdminSummaryResponse](&s)
}

func FromAdminCharts(ch analytics.AdminCharts) (*AdminChartsResponse, error) {
	res, err := copyTo[AdminChartsResponse](&ch)
	if err != nil {
		return nil, err
	}
	res.DailyReservations = nonNil(res.DailyReservations)
	res.DailyRevenue = nonNil(res.DailyRevenue)
	res.LotOccupancy = nonNil(res.LotOccupancy)
	res.LotRevenue = nonNil(res.LotRevenue)
	return res, nil
}

func FromUserSummary(s analytics.UserSummary) (*UserSummaryResponse, error) {
	res, err := copyTo[UserSummaryResponse](&s)
	if err != nil {
		return nil, err
	}
	if a := s.Active; a != nil {
		res.ActiveReservation = &ActiveSnapshotResponse{
			ID:        a.ID,
			LotID:     a.LotID,
			StartTime: a.StartTime,
			Status:    a.Status.String(),
		}
	}
	return res, nil
}

func FromUserCharts(ch analytics.UserCharts) (*UserChartsResponse, error) {
	res, err := copyTo[UserChartsResponse](&ch)
	if err != nil {
		return nil, err
	}
	res.DailyUsage = nonNil(res.DailyUsage)
	res.LotDistribution = nonNil(res.LotDistribution)
	res.StatusBreakdown = nonNil(res.StatusBreakdown)
	return res, nil
}

func FromMonthlyReport(r analytics.MonthlyReport) (*MonthlyReportResponse, error) {
	return copyTo[MonthlyReportResponse](&r)
}

func FromMonthlyReports(reports []analytics.UserMonthlyReport) ([]UserMonthlyReportResponse, error) {
	out := make([]UserMonthlyReportResponse, 0, len(reports))
	for _, r := range reports {
		report, err := FromMonthlyReport(r.Report)
		if err != nil {
			return nil, err
		}
		out = append(out, UserMonthlyReportResponse{User: fromRecipient(r.User), Report: *report})
	}
	return out, nil
}

func FromReminderDigest(d analytics.ReminderDigest) *ReminderDigestResponse {
	res := &ReminderDigestResponse{
		NewLots:   nonNil(d.NewLots),
		Reminders: make([]ReminderResponse, 0, len(d.Reminders)),
	}
	for _, r := range d.Reminders {
		res.Reminders = append(res.Reminders, ReminderResponse{
			User:                     fromRecipient(r.User),
			Inactive:                 r.Inactive,
			DaysSinceLastReservation: r.DaysSinceLastReservation,
			NewLots:                  nonNil(r.NewLots),
		})
	}
	return res
}

func fromRecipient(u analytics.UserProfile) RecipientResponse {
	return RecipientResponse{UserID: u.ID, Username: u.Username, Email: u.Email}
}

// copyTo matches fields by name. Chart rows must keep the projection's order.
func copyTo[T any](from any) (*T, error) {
	var to T
	if err := copier.Copy(&to, from); err != nil {
		return nil, err
	}
	return &to, nil
}

// Charts render empty series as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
