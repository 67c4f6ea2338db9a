// Package memory is a process-local storage backend. It follows the same
// row-locking protocol as the PostgreSQL backend and raises the same
// PostgreSQL error codes, so the unit of work retries it identically.
package memory

import (
	"sort"
	"sync"
	"time"

	"vehicle-parking/internal/domain/lot"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Constraint names mirror migrations/001_initial_schema.sql.
const (
	constraintUsername      = "users_username_key"
	constraintEmail         = "users_email_key"
	constraintLotCode       = "parking_lots_code_key"
	constraintLotName       = "parking_lots_name_key"
	constraintSpotNumber    = "parking_spots_lot_number_key"
	constraintActivePerUser = "reservations_one_active_per_user"
	constraintActivePerSpot = "reservations_one_active_per_spot"
)

type userRecord struct {
	id           uuid.UUID
	username     string
	email        string
	passwordHash string
	role         string
	pincode      *string
	createdAt    time.Time
	updatedAt    time.Time
}

type lotRecord struct {
	id            uuid.UUID
	code          string
	name          string
	address       string
	pincode       string
	price         decimal.Decimal
	numberOfSpots int
	createdAt     time.Time
	updatedAt     time.Time
}

type spotRecord struct {
	id        uuid.UUID
	lotID     uuid.UUID
	position  int
	number    string
	label     string
	status    string
	createdAt time.Time
}

type reservationRecord struct {
	id            uuid.UUID
	userID        uuid.UUID
	spotID        *uuid.UUID
	lotID         uuid.UUID
	vehicleNumber string
	startTime     time.Time
	endTime       *time.Time
	cost          *decimal.Decimal
	status        string
	createdAt     time.Time
	updatedAt     time.Time
}

// Store holds committed rows. Transactions stage their writes and apply them
// under mu at commit.
type Store struct {
	mu           sync.RWMutex
	users        map[uuid.UUID]userRecord
	lots         map[uuid.UUID]lotRecord
	spots        map[uuid.UUID]spotRecord
	reservations map[uuid.UUID]reservationRecord

	// unique maps a constraint key to its owner: nil once committed, or the
	// transaction that reserved it.
	unique map[string]*memTx

	locks *lockTable
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]userRecord),
		lots:         make(map[uuid.UUID]lotRecord),
		spots:        make(map[uuid.UUID]spotRecord),
		reservations: make(map[uuid.UUID]reservationRecord),
		unique:       make(map[string]*memTx),
		locks:        newLockTable(),
	}
}

func userKeys(r userRecord) []string {
	return []string{
		constraintUsername + ":" + r.username,
		constraintEmail + ":" + r.email,
	}
}

func lotKeys(r lotRecord) []string {
	return []string{
		constraintLotCode + ":" + r.code,
		constraintLotName + ":" + r.name,
	}
}

func spotKeys(r spotRecord) []string {
	return []string{constraintSpotNumber + ":" + r.lotID.String() + "/" + r.number}
}

func reservationKeys(r reservationRecord) []string {
	if r.status != reservation.StatusActive.String() {
		return nil
	}
	keys := []string{constraintActivePerUser + ":" + r.userID.String()}
	if r.spotID != nil {
		keys = append(keys, constraintActivePerSpot+":"+r.spotID.String())
	}
	return keys
}

func constraintOf(key string) string {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i]
		}
	}
	return key
}

func userToRecord(u *user.User) userRecord {
	r := userRecord{
		id:           u.ID(),
		username:     u.Username().Value(),
		email:        u.Email().Value(),
		passwordHash: u.PasswordHash(),
		role:         u.Role().String(),
		createdAt:    u.CreatedAt(),
		updatedAt:    u.UpdatedAt(),
	}
	if p := u.Pincode(); p != nil {
		v := p.Value()
		r.pincode = &v
	}
	return r
}

func (r userRecord) toDomain() (*user.User, error) {
	username, err := user.NewUsername(r.username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(r.email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(r.role)
	if err != nil {
		return nil, err
	}
	var pincode *user.Pincode
	if r.pincode != nil {
		p, err := user.NewPincode(*r.pincode)
		if err != nil {
			return nil, err
		}
		pincode = &p
	}
	return user.ReconstructUser(r.id, username, email, r.passwordHash, role, pincode, r.createdAt, r.updatedAt), nil
}

func lotToRecord(l *lot.Lot) lotRecord {
	return lotRecord{
		id:            l.ID(),
		code:          l.Code().String(),
		name:          l.Name(),
		address:       l.Address(),
		pincode:       l.Pincode().String(),
		price:         l.HourlyRate(),
		numberOfSpots: l.NumberOfSpots(),
		createdAt:     l.CreatedAt(),
		updatedAt:     l.UpdatedAt(),
	}
}

func (r lotRecord) toDomain() *lot.Lot {
	return lot.ReconstructLot(r.id, r.code, r.name, r.address, r.pincode, r.price, r.numberOfSpots, r.createdAt, r.updatedAt)
}

func spotToRecord(s *spot.Spot) spotRecord {
	return spotRecord{
		id:        s.ID(),
		lotID:     s.LotID(),
		position:  s.Position(),
		number:    s.Number(),
		label:     s.Label(),
		status:    s.Status().String(),
		createdAt: s.CreatedAt(),
	}
}

func (r spotRecord) toDomain() *spot.Spot {
	return spot.ReconstructSpot(r.id, r.lotID, r.position, r.number, r.label, spot.Status(r.status), r.createdAt)
}

func reservationToRecord(res *reservation.Reservation) reservationRecord {
	return reservationRecord{
		id:            res.ID(),
		userID:        res.UserID(),
		spotID:        res.SpotID(),
		lotID:         res.LotID(),
		vehicleNumber: res.VehicleNumber().String(),
		startTime:     res.StartTime(),
		endTime:       res.EndTime(),
		cost:          res.Cost(),
		status:        res.Status().String(),
		createdAt:     res.CreatedAt(),
		updatedAt:     res.UpdatedAt(),
	}
}

func (r reservationRecord) toDomain() (*reservation.Reservation, error) {
	vehicle, err := reservation.NewVehicleNumber(r.vehicleNumber)
	if err != nil {
		return nil, err
	}
	return reservation.ReconstructReservation(
		r.id, r.userID, r.spotID, r.lotID, vehicle,
		r.startTime, r.endTime, r.cost,
		reservation.Status(r.status),
		r.createdAt, r.updatedAt,
	), nil
}

func sortSpots(spots []spotRecord) {
	sort.Slice(spots, func(i, j int) bool {
		if spots[i].position != spots[j].position {
			return spots[i].position < spots[j].position
		}
		return spots[i].number < spots[j].number
	})
}
