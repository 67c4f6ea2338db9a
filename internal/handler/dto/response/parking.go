package response

import (
	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// FromReservation renders a freshly written reservation in the same shape
// the reservation listings use.
func FromReservation(r *reservation.Reservation, sp *spot.Spot, l *lot.Lot) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:            r.ID(),
		UserID:        r.UserID(),
		SpotID:        r.SpotID(),
		LotID:         l.ID(),
		LotCode:       l.Code().String(),
		LotName:       l.Name(),
		HourlyRate:    l.HourlyRate(),
		VehicleNumber: r.VehicleNumber().String(),
		StartTime:     r.StartTime(),
		EndTime:       r.EndTime(),
		Cost:          r.Cost(),
		Status:        r.Status().String(),
		CreatedAt:     r.CreatedAt(),
		UpdatedAt:     r.UpdatedAt(),
	}
	if sp != nil {
		number, label := sp.Number(), sp.Label()
		view.SpotNumber = &number
		view.SpotLabel = &label
	}
	return view
}

type VacateResponse struct {
	Cost        decimal.Decimal          `json:"cost"`
	Reservation *queries.ReservationView `json:"reservation"`
}

type ReservationListResponse struct {
	Reservations []*queries.ReservationView `json:"reservations"`
	NextCursor   string                     `json:"next_cursor,omitempty"`
}

func FromReservationPage(page *queries.ReservationPage) *ReservationListResponse {
	res := &ReservationListResponse{Reservations: page.Items}
	if res.Reservations == nil {
		res.Reservations = []*queries.ReservationView{}
	}
	if page.Next != nil {
		res.NextCursor = page.Next.After
	}
	return res
}
