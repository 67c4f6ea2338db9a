package memory

import (
	"context"
	"errors"
	"time"

	"vehicle-parking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

// memTx stages writes on top of the committed rows. A nil staged record
// marks a deletion.
type memTx struct {
	store       *Store
	locks       *lockSet
	lockTimeout time.Duration

	users        map[uuid.UUID]*userRecord
	lots         map[uuid.UUID]*lotRecord
	spots        map[uuid.UUID]*spotRecord
	reservations map[uuid.UUID]*reservationRecord

	reserved map[string]struct{}
	freed    map[string]struct{}
}

func newMemTx(store *Store, lockTimeout time.Duration) *memTx {
	return &memTx{
		store:        store,
		locks:        newLockSet(store.locks),
		lockTimeout:  lockTimeout,
		users:        make(map[uuid.UUID]*userRecord),
		lots:         make(map[uuid.UUID]*lotRecord),
		spots:        make(map[uuid.UUID]*spotRecord),
		reservations: make(map[uuid.UUID]*reservationRecord),
		reserved:     make(map[string]struct{}),
		freed:        make(map[string]struct{}),
	}
}

func (t *memTx) commit() {
	s := t.store
	s.mu.Lock()
	for id, r := range t.users {
		if r == nil {
			delete(s.users, id)
		} else {
			s.users[id] = *r
		}
	}
	for id, r := range t.lots {
		if r == nil {
			delete(s.lots, id)
		} else {
			s.lots[id] = *r
		}
	}
	for id, r := range t.spots {
		if r == nil {
			delete(s.spots, id)
		} else {
			s.spots[id] = *r
		}
	}
	for id, r := range t.reservations {
		if r == nil {
			delete(s.reservations, id)
		} else {
			s.reservations[id] = *r
		}
	}
	for k := range t.reserved {
		s.unique[k] = nil
	}
	for k := range t.freed {
		if owner, ok := s.unique[k]; ok && owner == nil {
			delete(s.unique, k)
		}
	}
	s.mu.Unlock()

	t.locks.releaseAll()
}

func (t *memTx) rollback() {
	s := t.store
	s.mu.Lock()
	for k := range t.reserved {
		if s.unique[k] == t {
			delete(s.unique, k)
		}
	}
	s.mu.Unlock()

	t.locks.releaseAll()
}

func (t *memTx) lock(ctx context.Context, key string, mode lockMode) error {
	lockCtx := ctx
	if t.lockTimeout > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, t.lockTimeout)
		defer cancel()
	}

	err := t.locks.lock(lockCtx, key, mode)
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return infra.WrapRepoErr("lock wait cancelled", ctx.Err())
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return infra.WrapRepoErr("lock wait timed out", &pgconn.PgError{
			Code:    pgLockNotAvailable,
			Message: "canceling statement due to lock timeout on " + key,
		})
	}
	return infra.WrapRepoErr("lock wait failed", err)
}

// swapKeys moves the unique keys of a row from oldKeys to newKeys. Keys owned
// by another transaction or already committed for a different row fail with
// a unique violation.
func (t *memTx) swapKeys(oldKeys, newKeys []string) error {
	old := make(map[string]struct{}, len(oldKeys))
	for _, k := range oldKeys {
		old[k] = struct{}{}
	}
	next := make(map[string]struct{}, len(newKeys))
	for _, k := range newKeys {
		next[k] = struct{}{}
	}

	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for k := range next {
		if _, mine := old[k]; mine {
			continue
		}
		if _, mine := t.freed[k]; mine {
			continue
		}
		if owner, taken := s.unique[k]; taken && owner != t {
			return infra.WrapRepoErr("duplicate key", &pgconn.PgError{
				Code:           pgUniqueViolation,
				Message:        "duplicate key value violates unique constraint",
				ConstraintName: constraintOf(k),
			})
		}
	}

	for k := range next {
		if _, mine := old[k]; mine {
			continue
		}
		delete(t.freed, k)
		if _, taken := s.unique[k]; !taken {
			s.unique[k] = t
			t.reserved[k] = struct{}{}
		}
	}
	for k := range old {
		if _, kept := next[k]; kept {
			continue
		}
		if s.unique[k] == t {
			delete(s.unique, k)
			delete(t.reserved, k)
		} else {
			t.freed[k] = struct{}{}
		}
	}
	return nil
}

func (t *memTx) user(id uuid.UUID) (userRecord, bool) {
	if r, ok := t.users[id]; ok {
		if r == nil {
			return userRecord{}, false
		}
		return *r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.users[id]
	return r, ok
}

func (t *memTx) lot(id uuid.UUID) (lotRecord, bool) {
	if r, ok := t.lots[id]; ok {
		if r == nil {
			return lotRecord{}, false
		}
		return *r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.lots[id]
	return r, ok
}

func (t *memTx) spot(id uuid.UUID) (spotRecord, bool) {
	if r, ok := t.spots[id]; ok {
		if r == nil {
			return spotRecord{}, false
		}
		return *r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.spots[id]
	return r, ok
}

func (t *memTx) reservation(id uuid.UUID) (reservationRecord, bool) {
	if r, ok := t.reservations[id]; ok {
		if r == nil {
			return reservationRecord{}, false
		}
		return *r, true
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	r, ok := t.store.reservations[id]
	return r, ok
}

func (t *memTx) allUsers() []userRecord {
	t.store.mu.RLock()
	merged := make(map[uuid.UUID]userRecord, len(t.store.users))
	for id, r := range t.store.users {
		merged[id] = r
	}
	t.store.mu.RUnlock()
	result := make([]userRecord, 0, len(merged))
	for id, r := range t.users {
		if r == nil {
			delete(merged, id)
		} else {
			merged[id] = *r
		}
	}
	for _, r := range merged {
		result = append(result, r)
	}
	return result
}

func (t *memTx) spotsOfLot(lotID uuid.UUID) []spotRecord {
	merged := make(map[uuid.UUID]spotRecord)
	t.store.mu.RLock()
	for id, r := range t.store.spots {
		if r.lotID == lotID {
			merged[id] = r
		}
	}
	t.store.mu.RUnlock()
	for id, r := range t.spots {
		switch {
		case r == nil:
			delete(merged, id)
		case r.lotID == lotID:
			merged[id] = *r
		}
	}

	result := make([]spotRecord, 0, len(merged))
	for _, r := range merged {
		result = append(result, r)
	}
	sortSpots(result)
	return result
}

func (t *memTx) reservationsWhere(match func(reservationRecord) bool) []reservationRecord {
	merged := make(map[uuid.UUID]reservationRecord)
	t.store.mu.RLock()
	for id, r := range t.store.reservations {
		if match(r) {
			merged[id] = r
		}
	}
	t.store.mu.RUnlock()
	for id, r := range t.reservations {
		switch {
		case r == nil:
			delete(merged, id)
		case match(*r):
			merged[id] = *r
		default:
			delete(merged, id)
		}
	}

	result := make([]reservationRecord, 0, len(merged))
	for _, r := range merged {
		result = append(result, r)
	}
	return result
}

func (t *memTx) putUser(r userRecord) error {
	var oldKeys []string
	if old, ok := t.user(r.id); ok {
		oldKeys = userKeys(old)
	}
	if err := t.swapKeys(oldKeys, userKeys(r)); err != nil {
		return err
	}
	t.users[r.id] = &r
	return nil
}

func (t *memTx) putLot(r lotRecord) error {
	var oldKeys []string
	if old, ok := t.lot(r.id); ok {
		oldKeys = lotKeys(old)
	}
	if err := t.swapKeys(oldKeys, lotKeys(r)); err != nil {
		return err
	}
	t.lots[r.id] = &r
	return nil
}

func (t *memTx) putSpot(r spotRecord) error {
	var oldKeys []string
	if old, ok := t.spot(r.id); ok {
		oldKeys = spotKeys(old)
	}
	if err := t.swapKeys(oldKeys, spotKeys(r)); err != nil {
		return err
	}
	t.spots[r.id] = &r
	return nil
}

func (t *memTx) putReservation(r reservationRecord) error {
	var oldKeys []string
	if old, ok := t.reservation(r.id); ok {
		oldKeys = reservationKeys(old)
	}
	if err := t.swapKeys(oldKeys, reservationKeys(r)); err != nil {
		return err
	}
	t.reservations[r.id] = &r
	return nil
}

func (t *memTx) deleteSpot(r spotRecord) error {
	if err := t.swapKeys(spotKeys(r), nil); err != nil {
		return err
	}
	t.spots[r.id] = nil

	// ON DELETE SET NULL
	for _, res := range t.reservationsWhere(func(res reservationRecord) bool {
		return res.spotID != nil && *res.spotID == r.id
	}) {
		res.spotID = nil
		if err := t.putReservation(res); err != nil {
			return err
		}
	}
	return nil
}

// deleteLot cascades to the lot's spots and reservations.
func (t *memTx) deleteLot(r lotRecord) error {
	for _, res := range t.reservationsWhere(func(res reservationRecord) bool { return res.lotID == r.id }) {
		if err := t.swapKeys(reservationKeys(res), nil); err != nil {
			return err
		}
		t.reservations[res.id] = nil
	}
	for _, s := range t.spotsOfLot(r.id) {
		if err := t.swapKeys(spotKeys(s), nil); err != nil {
			return err
		}
		t.spots[s.id] = nil
	}
	if err := t.swapKeys(lotKeys(r), nil); err != nil {
		return err
	}
	t.lots[r.id] = nil
	return nil
}
