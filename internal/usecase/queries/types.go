package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

// LotStatus is the live availability of one lot. This is what the lot
// status cache stores.
type LotStatus struct {
	Occupied  int `json:"occupied"`
	Available int `json:"available"`
}

type LotView struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Pincode        string          `json:"pincode"`
	Price          decimal.Decimal `json:"price"`
	NumberOfSpots  int             `json:"number_of_spots"`
	OccupiedSpots  int             `json:"occupied_spots"`
	AvailableSpots int             `json:"available_spots"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (v *LotView) applyStatus(s LotStatus) {
	v.OccupiedSpots = s.Occupied
	v.AvailableSpots = s.Available
}

type SpotView struct {
	ID           uuid.UUID `json:"id"`
	LotID        uuid.UUID `json:"lot_id"`
	LotCode      string    `json:"lot_code"`
	Position     int       `json:"position"`
	SpotNumber   string    `json:"spot_number"`
	Label        string    `json:"label"`
	DisplayLabel string    `json:"display_label"`
	Status       string    `json:"status"`
	StatusLabel  string    `json:"status_label"`
	CreatedAt    time.Time `json:"created_at"`
}

type ReservationView struct {
	ID            uuid.UUID        `json:"id"`
	UserID        uuid.UUID        `json:"user_id"`
	SpotID        *uuid.UUID       `json:"spot_id,omitempty"`
	SpotNumber    *string          `json:"spot_number,omitempty"`
	SpotLabel     *string          `json:"spot_label,omitempty"`
	LotID         uuid.UUID        `json:"lot_id"`
	LotCode       string           `json:"lot_code"`
	LotName       string           `json:"lot_name"`
	HourlyRate    decimal.Decimal  `json:"hourly_rate"`
	VehicleNumber string           `json:"vehicle_number"`
	StartTime     time.Time        `json:"start_time"`
	EndTime       *time.Time       `json:"end_time,omitempty"`
	Cost          *decimal.Decimal `json:"cost,omitempty"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ActiveReservationView adds the running charge. Never persisted.
type ActiveReservationView struct {
	ReservationView
	CostSoFar       decimal.Decimal `json:"cost_so_far"`
	DurationMinutes int64           `json:"duration_minutes"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Pincode   *string   `json:"pincode,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SpotDetailsView struct {
	Spot              SpotView         `json:"spot"`
	Lot               LotView          `json:"lot"`
	ActiveReservation *ReservationView `json:"active_reservation,omitempty"`
	Occupant          *UserView        `json:"occupant,omitempty"`
}

type ReservationPage struct {
	Items []*ReservationView `json:"items"`
	Next  *Cursor            `json:"next,omitempty"`
}
