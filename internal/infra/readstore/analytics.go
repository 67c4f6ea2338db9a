package readstore

import (
	"context"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/domain/spot"
	"vehicle-parking/internal/infra"
	"vehicle-parking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	snapshotLotsSQL  = `SELECT id, code, name, created_at FROM parking_lots ORDER BY created_at, code`
	snapshotSpotsSQL = `SELECT id, lot_id, status FROM parking_spots`
	userCountSQL     = `SELECT count(*) FROM users WHERE role = 'user'`
	digestUsersSQL   = `SELECT id, username, email FROM users WHERE role = 'user' ORDER BY username`

	snapshotReservationsSQL = `
SELECT id, user_id, lot_id, start_time, end_time, cost, status, created_at
FROM reservations`

	userReservationsSQL = snapshotReservationsSQL + ` WHERE user_id = $1`

	userLotsSQL = `
SELECT id, code, name, created_at FROM parking_lots
WHERE id IN (SELECT DISTINCT lot_id FROM reservations WHERE user_id = $1)`
)

type TxBeginner interface {
	BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error)
}

// AnalyticsReadStore reads every table of a snapshot inside one repeatable
// read transaction so counters agree with each other.
type AnalyticsReadStore struct {
	pool TxBeginner
}

func NewAnalyticsReadStore(pool TxBeginner) *AnalyticsReadStore {
	return &AnalyticsReadStore{pool: pool}
}

func (r *AnalyticsReadStore) AdminSnapshot(ctx context.Context) (analytics.Snapshot, error) {
	var snap analytics.Snapshot
	err := r.withSnapshot(ctx, func(tx pgx.Tx) error {
		var err error
		if snap.Lots, err = scanLots(ctx, tx, snapshotLotsSQL); err != nil {
			return err
		}
		if snap.Spots, err = scanSpots(ctx, tx); err != nil {
			return err
		}
		if snap.Reservations, err = scanReservations(ctx, tx, snapshotReservationsSQL); err != nil {
			return err
		}
		var users int64
		if err := tx.QueryRow(ctx, userCountSQL).Scan(&users); err != nil {
			return infra.WrapRepoErr("failed to count users", err)
		}
		snap.UserCount = int(users)
		return nil
	})
	return snap, err
}

func (r *AnalyticsReadStore) UserSnapshot(ctx context.Context, userID uuid.UUID) (analytics.UserSnapshot, error) {
	snap := analytics.UserSnapshot{UserID: userID}
	err := r.withSnapshot(ctx, func(tx pgx.Tx) error {
		var err error
		if snap.Reservations, err = scanReservations(ctx, tx, userReservationsSQL, userID); err != nil {
			return err
		}
		snap.Lots, err = scanLots(ctx, tx, userLotsSQL, userID)
		return err
	})
	return snap, err
}

func (r *AnalyticsReadStore) DigestSnapshot(ctx context.Context) (analytics.DigestSnapshot, error) {
	var snap analytics.DigestSnapshot
	err := r.withSnapshot(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, digestUsersSQL)
		if err != nil {
			return infra.WrapRepoErr("failed to read users", err)
		}
		snap.Users, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.UserProfile, error) {
			var u analytics.UserProfile
			err := row.Scan(&u.ID, &u.Username, &u.Email)
			return u, err
		})
		if err != nil {
			return infra.WrapRepoErr("failed to scan users", err)
		}
		if snap.Lots, err = scanLots(ctx, tx, snapshotLotsSQL); err != nil {
			return err
		}
		snap.Reservations, err = scanReservations(ctx, tx, snapshotReservationsSQL)
		return err
	})
	return snap, err
}

func (r *AnalyticsReadStore) withSnapshot(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return infra.WrapRepoErr("failed to begin snapshot transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to close snapshot transaction", err)
	}
	return nil
}

func scanLots(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]analytics.LotSnapshot, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read lots", err)
	}
	lots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.LotSnapshot, error) {
		var l analytics.LotSnapshot
		err := row.Scan(&l.ID, &l.Code, &l.Name, &l.CreatedAt)
		l.CreatedAt = l.CreatedAt.UTC()
		return l, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan lots", err)
	}
	return lots, nil
}

func scanSpots(ctx context.Context, tx pgx.Tx) ([]analytics.SpotSnapshot, error) {
	rows, err := tx.Query(ctx, snapshotSpotsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read spots", err)
	}
	spots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.SpotSnapshot, error) {
		var (
			s      analytics.SpotSnapshot
			status string
		)
		err := row.Scan(&s.ID, &s.LotID, &status)
		s.Status = spot.Status(status)
		return s, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan spots", err)
	}
	return spots, nil
}

func scanReservations(ctx context.Context, tx pgx.Tx, query string, args ...any) ([]analytics.ReservationSnapshot, error) {
	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read reservations", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (analytics.ReservationSnapshot, error) {
		var (
			r       analytics.ReservationSnapshot
			endTime pgtype.Timestamptz
			cost    pgtype.Numeric
			status  string
		)
		if err := row.Scan(&r.ID, &r.UserID, &r.LotID, &r.StartTime, &endTime, &cost, &status, &r.CreatedAt); err != nil {
			return r, err
		}
		c, err := pgconv.DecimalPtrFromNumeric(cost)
		if err != nil {
			return r, err
		}
		r.EndTime = pgconv.TimePtrFromPgtype(endTime)
		r.Cost = c
		r.Status = reservation.Status(status)
		r.StartTime = r.StartTime.UTC()
		r.CreatedAt = r.CreatedAt.UTC()
		return r, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan reservations", err)
	}
	return result, nil
}
