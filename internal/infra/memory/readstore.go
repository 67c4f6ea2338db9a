package memory

import (
	"context"
	"sort"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

// ReadStore serves every read model from committed rows. Each call reads
// under one read lock, so it sees a single consistent state.
type ReadStore struct {
	store *Store
}

func NewReadStore(store *Store) *ReadStore {
	return &ReadStore{store: store}
}

func (r *ReadStore) ListLots(_ context.Context) ([]*queries.LotView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*queries.LotView, 0, len(r.store.lots))
	for _, l := range r.store.lots {
		result = append(result, lotView(l))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].Code < result[j].Code
	})
	return result, nil
}

func (r *ReadStore) FindLotByID(_ context.Context, id uuid.UUID) (*queries.LotView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	l, ok := r.store.lots[id]
	if !ok {
		return nil, infra.WrapRepoErr("lot not found", nil, infra.KindNotFound)
	}
	return lotView(l), nil
}

func (r *ReadStore) LotStatuses(_ context.Context, lotIDs []uuid.UUID) (map[uuid.UUID]queries.LotStatus, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make(map[uuid.UUID]queries.LotStatus, len(lotIDs))
	for _, id := range lotIDs {
		result[id] = queries.LotStatus{}
	}
	for _, s := range r.store.spots {
		st, ok := result[s.lotID]
		if !ok {
			continue
		}
		if s.status == spot.StatusOccupied.String() {
			st.Occupied++
		} else {
			st.Available++
		}
		result[s.lotID] = st
	}
	return result, nil
}

func (r *ReadStore) ListSpots(_ context.Context, lotID uuid.UUID) ([]*queries.SpotView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []spotRecord
	for _, s := range r.store.spots {
		if s.lotID == lotID {
			records = append(records, s)
		}
	}
	sortSpots(records)

	code := r.store.lots[lotID].code
	result := make([]*queries.SpotView, 0, len(records))
	for _, s := range records {
		result = append(result, spotView(s, code))
	}
	return result, nil
}

func (r *ReadStore) FindSpotByID(_ context.Context, spotID uuid.UUID) (*queries.SpotView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.spots[spotID]
	if !ok {
		return nil, infra.WrapRepoErr("spot not found", nil, infra.KindNotFound)
	}
	return spotView(s, r.store.lots[s.lotID].code), nil
}

func (r *ReadStore) ListByUser(_ context.Context, userID uuid.UUID, after *queries.PageKey, limit int) ([]*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var records []reservationRecord
	for _, res := range r.store.reservations {
		if res.userID == userID {
			records = append(records, res)
		}
	}
	sort.Slice(records, func(i, j int) bool { return newerThan(records[i], records[j]) })

	result := []*queries.ReservationView{}
	for _, res := range records {
		if after != nil && !olderThanKey(res, *after) {
			continue
		}
		result = append(result, r.reservationView(res))
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func (r *ReadStore) FindActiveByUser(_ context.Context, userID uuid.UUID) (*queries.ReservationView, error) {
	return r.findActive(func(res reservationRecord) bool { return res.userID == userID })
}

func (r *ReadStore) FindActiveBySpot(_ context.Context, spotID uuid.UUID) (*queries.ReservationView, error) {
	return r.findActive(func(res reservationRecord) bool { return res.spotID != nil && *res.spotID == spotID })
}

func (r *ReadStore) findActive(match func(reservationRecord) bool) (*queries.ReservationView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, res := range r.store.reservations {
		if res.status == reservation.StatusActive.String() && match(res) {
			return r.reservationView(res), nil
		}
	}
	return nil, infra.WrapRepoErr("active reservation not found", nil, infra.KindNotFound)
}

func (r *ReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return userView(u), nil
}

func (r *ReadStore) ListByRole(_ context.Context, role user.Role) ([]*queries.UserView, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := []*queries.UserView{}
	for _, u := range r.store.users {
		if u.role == role.String() {
			result = append(result, userView(u))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].Username < result[j].Username
	})
	return result, nil
}

func (r *ReadStore) AdminSnapshot(_ context.Context) (analytics.Snapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var snap analytics.Snapshot
	for _, l := range r.store.lots {
		snap.Lots = append(snap.Lots, lotSnapshot(l))
	}
	sort.Slice(snap.Lots, func(i, j int) bool {
		a, b := r.store.lots[snap.Lots[i].ID], r.store.lots[snap.Lots[j].ID]
		if !a.createdAt.Equal(b.createdAt) {
			return a.createdAt.Before(b.createdAt)
		}
		return a.code < b.code
	})
	for _, s := range r.store.spots {
		snap.Spots = append(snap.Spots, analytics.SpotSnapshot{ID: s.id, LotID: s.lotID, Status: spot.Status(s.status)})
	}
	for _, res := range r.store.reservations {
		snap.Reservations = append(snap.Reservations, reservationSnapshot(res))
	}
	for _, u := range r.store.users {
		if u.role == user.RoleUser.String() {
			snap.UserCount++
		}
	}
	return snap, nil
}

func (r *ReadStore) UserSnapshot(_ context.Context, userID uuid.UUID) (analytics.UserSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snap := analytics.UserSnapshot{UserID: userID}
	seen := make(map[uuid.UUID]struct{})
	for _, res := range r.store.reservations {
		if res.userID != userID {
			continue
		}
		snap.Reservations = append(snap.Reservations, reservationSnapshot(res))
		if _, ok := seen[res.lotID]; ok {
			continue
		}
		seen[res.lotID] = struct{}{}
		if l, ok := r.store.lots[res.lotID]; ok {
			snap.Lots = append(snap.Lots, lotSnapshot(l))
		}
	}
	return snap, nil
}

func (r *ReadStore) DigestSnapshot(_ context.Context) (analytics.DigestSnapshot, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var snap analytics.DigestSnapshot
	for _, u := range r.store.users {
		if u.role != user.RoleUser.String() {
			continue
		}
		snap.Users = append(snap.Users, analytics.UserProfile{ID: u.id, Username: u.username, Email: u.email})
	}
	for _, l := range r.store.lots {
		snap.Lots = append(snap.Lots, lotSnapshot(l))
	}
	for _, res := range r.store.reservations {
		snap.Reservations = append(snap.Reservations, reservationSnapshot(res))
	}
	return snap, nil
}

// reservationView must be called with the read lock held.
func (r *ReadStore) reservationView(res reservationRecord) *queries.ReservationView {
	l := r.store.lots[res.lotID]
	v := &queries.ReservationView{
		ID:            res.id,
		UserID:        res.userID,
		SpotID:        res.spotID,
		LotID:         res.lotID,
		LotCode:       l.code,
		LotName:       l.name,
		HourlyRate:    l.price,
		VehicleNumber: res.vehicleNumber,
		StartTime:     res.startTime,
		EndTime:       res.endTime,
		Cost:          res.cost,
		Status:        res.status,
		CreatedAt:     res.createdAt,
		UpdatedAt:     res.updatedAt,
	}
	if res.spotID != nil {
		if s, ok := r.store.spots[*res.spotID]; ok {
			number, label := s.number, s.label
			v.SpotNumber = &number
			v.SpotLabel = &label
		}
	}
	return v
}

// newerThan orders by (created_at, id) descending, matching the SQL keyset.
func newerThan(a, b reservationRecord) bool {
	if !a.createdAt.Equal(b.createdAt) {
		return a.createdAt.After(b.createdAt)
	}
	return a.id.String() > b.id.String()
}

func olderThanKey(res reservationRecord, key queries.PageKey) bool {
	if !res.createdAt.Equal(key.CreatedAt) {
		return res.createdAt.Before(key.CreatedAt)
	}
	return res.id.String() < key.ID.String()
}

func lotView(l lotRecord) *queries.LotView {
	return &queries.LotView{
		ID:            l.id,
		Code:          l.code,
		Name:          l.name,
		Address:       l.address,
		Pincode:       l.pincode,
		Price:         l.price,
		NumberOfSpots: l.numberOfSpots,
		CreatedAt:     l.createdAt,
		UpdatedAt:     l.updatedAt,
	}
}

func spotView(s spotRecord, lotCode string) *queries.SpotView {
	status := spot.Status(s.status)
	return &queries.SpotView{
		ID:           s.id,
		LotID:        s.lotID,
		LotCode:      lotCode,
		Position:     s.position,
		SpotNumber:   s.number,
		Label:        s.label,
		DisplayLabel: spot.DisplayLabel(lotCode, s.label),
		Status:       status.String(),
		StatusLabel:  status.Label(),
		CreatedAt:    s.createdAt,
	}
}

func userView(u userRecord) *queries.UserView {
	return &queries.UserView{
		ID:        u.id,
		Username:  u.username,
		Email:     u.email,
		Role:      u.role,
		Pincode:   u.pincode,
		CreatedAt: u.createdAt,
		UpdatedAt: u.updatedAt,
	}
}

func lotSnapshot(l lotRecord) analytics.LotSnapshot {
	return analytics.LotSnapshot{ID: l.id, Code: l.code, Name: l.name, CreatedAt: l.createdAt}
}

func reservationSnapshot(res reservationRecord) analytics.ReservationSnapshot {
	return analytics.ReservationSnapshot{
		ID:        res.id,
		UserID:    res.userID,
		LotID:     res.lotID,
		StartTime: res.startTime,
		EndTime:   res.endTime,
		Cost:      res.cost,
		Status:    reservation.Status(res.status),
		CreatedAt: res.createdAt,
	}
}
