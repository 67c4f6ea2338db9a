package queries

//go:generate mockgen -source=lot.go -destination=../../../tests/mock/queries/lot_mock.go -package=queriesmock

import (
	"context"
	"log/slog"

	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrLotNotFound  = errs.Mark(errs.New("parking lot not found"), errs.ErrNotFound)
	ErrSpotNotFound = errs.Mark(errs.New("spot not found"), errs.ErrNotFound)
)

type LotQueries interface {
	// ListLots serves availability from the lot status cache when possible.
	ListLots(ctx context.Context) ([]*LotView, error)
	GetLot(ctx context.Context, lotID uuid.UUID) (*LotView, error)
	ListSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
	SpotDetails(ctx context.Context, spotID uuid.UUID) (*SpotDetailsView, error)
}

type LotReadStore interface {
	ListLots(ctx context.Context) ([]*LotView, error)
	FindLotByID(ctx context.Context, id uuid.UUID) (*LotView, error)
	LotStatuses(ctx context.Context, lotIDs []uuid.UUID) (map[uuid.UUID]LotStatus, error)
	ListSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error)
	FindSpotByID(ctx context.Context, spotID uuid.UUID) (*SpotView, error)
}

// LotStatusCache holds per-lot availability next to a per-lot generation
// that writers bump after commit. FillMany stores a status only while the
// lot's generation still equals the one GetMany returned, so a fill computed
// before a concurrent write never lands after that write's invalidation.
type LotStatusCache interface {
	GetMany(ctx context.Context, lotIDs []uuid.UUID) (*LotStatusLookup, error)
	FillMany(ctx context.Context, statuses map[uuid.UUID]LotStatus, generations map[uuid.UUID]int64) error
}

// LotStatusLookup is a cache read: the cached statuses plus the generation
// of every requested lot at read time.
type LotStatusLookup struct {
	Hits        map[uuid.UUID]LotStatus
	Generations map[uuid.UUID]int64
}

type lotQueriesImpl struct {
	lots         LotReadStore
	reservations ReservationReadStore
	users        UserReadStore
	cache        LotStatusCache
}

func NewLotQueries(lots LotReadStore, reservations ReservationReadStore, users UserReadStore, cache LotStatusCache) LotQueries {
	return &lotQueriesImpl{
		lots:         lots,
		reservations: reservations,
		users:        users,
		cache:        cache,
	}
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	lots, err := q.lots.ListLots(ctx)
	if err != nil {
		return nil, err
	}
	if len(lots) == 0 {
		return lots, nil
	}

	ids := make([]uuid.UUID, len(lots))
	for i, l := range lots {
		ids[i] = l.ID
	}

	statuses := map[uuid.UUID]LotStatus{}
	var generations map[uuid.UUID]int64
	lookup, err := q.cache.GetMany(ctx, ids)
	if err != nil {
		slog.Warn("lot status cache read failed, falling back to database", "error", err.Error())
	} else {
		for id, s := range lookup.Hits {
			statuses[id] = s
		}
		generations = lookup.Generations
	}

	var misses []uuid.UUID
	for _, id := range ids {
		if _, ok := statuses[id]; !ok {
			misses = append(misses, id)
		}
	}

	if len(misses) > 0 {
		fresh, err := q.lots.LotStatuses(ctx, misses)
		if err != nil {
			return nil, err
		}
		// Without generations from the read there is nothing to guard the fill with.
		if generations != nil {
			if err := q.cache.FillMany(ctx, fresh, generations); err != nil {
				slog.Warn("lot status cache write failed", "error", err.Error())
			}
		}
		for id, s := range fresh {
			statuses[id] = s
		}
	}

	for _, l := range lots {
		l.applyStatus(statuses[l.ID])
	}
	return lots, nil
}

func (q *lotQueriesImpl) GetLot(ctx context.Context, lotID uuid.UUID) (*LotView, error) {
	l, err := q.lots.FindLotByID(ctx, lotID)
	if err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	statuses, err := q.lots.LotStatuses(ctx, []uuid.UUID{lotID})
	if err != nil {
		return nil, err
	}
	l.applyStatus(statuses[lotID])
	return l, nil
}

func (q *lotQueriesImpl) ListSpots(ctx context.Context, lotID uuid.UUID) ([]*SpotView, error) {
	if _, err := q.lots.FindLotByID(ctx, lotID); err != nil {
		return nil, mapNotFound(err, ErrLotNotFound)
	}
	return q.lots.ListSpots(ctx, lotID)
}

func (q *lotQueriesImpl) SpotDetails(ctx context.Context, spotID uuid.UUID) (*SpotDetailsView, error) {
	s, err := q.lots.FindSpotByID(ctx, spotID)
	if err != nil {
		return nil, mapNotFound(err, ErrSpotNotFound)
	}
	l, err := q.GetLot(ctx, s.LotID)
	if err != nil {
		return nil, err
	}

	details := &SpotDetailsView{Spot: *s, Lot: *l}

	res, err := q.reservations.FindActiveBySpot(ctx, spotID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return details, nil
	case err != nil:
		return nil, err
	}
	details.ActiveReservation = res

	occupant, err := q.users.FindByID(ctx, res.UserID)
	if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}
	details.Occupant = occupant
	return details, nil
}

func mapNotFound(err, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return err
}
