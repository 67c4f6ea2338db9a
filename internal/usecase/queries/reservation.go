package queries

//go:generate mockgen -source=reservation.go -destination=../../../tests/mock/queries/reservation_mock.go -package=queriesmock

import (
	"context"
	"time"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNoActiveReservation = errs.Mark(errs.New("no active reservation"), errs.ErrNotFound)

// PageKey is the (created_at, id) position after which the next page starts.
type PageKey struct {
	CreatedAt time.Time
	ID        uuid.UUID
}

type ReservationQueries interface {
	// ListMine pages through the user's reservations, newest first.
	ListMine(ctx context.Context, userID uuid.UUID, after string, limit int) (*ReservationPage, error)
	Active(ctx context.Context, userID uuid.UUID) (*ActiveReservationView, error)
}

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, after *PageKey, limit int) ([]*ReservationView, error)
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*ReservationView, error)
	FindActiveBySpot(ctx context.Context, spotID uuid.UUID) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store      ReservationReadStore
	clock      clock.Clock
	calculator billing.Calculator
}

func NewReservationQueries(store ReservationReadStore, clk clock.Clock, calculator billing.Calculator) ReservationQueries {
	return &reservationQueriesImpl{store: store, clock: clk, calculator: calculator}
}

func (q *reservationQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, after string, limit int) (*ReservationPage, error) {
	limit = ValidateLimit(limit)

	var key *PageKey
	if after != "" {
		t, id, err := DecodeAfterCursor(after)
		if err != nil {
			return nil, err
		}
		key = &PageKey{CreatedAt: t, ID: id}
	}

	// one extra row tells whether another page exists
	rows, err := q.store.ListByUser(ctx, userID, key, limit+1)
	if err != nil {
		return nil, err
	}

	page := &ReservationPage{Items: rows}
	if len(rows) > limit {
		page.Items = rows[:limit]
		last := page.Items[limit-1]
		page.Next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return page, nil
}

func (q *reservationQueriesImpl) Active(ctx context.Context, userID uuid.UUID) (*ActiveReservationView, error) {
	res, err := q.store.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, mapNotFound(err, ErrNoActiveReservation)
	}

	now := q.clock.Now()
	return &ActiveReservationView{
		ReservationView: *res,
		CostSoFar:       q.calculator.Cost(res.StartTime, now, res.HourlyRate),
		DurationMinutes: int64(billing.Elapsed(res.StartTime, now) / time.Minute),
	}, nil
}
