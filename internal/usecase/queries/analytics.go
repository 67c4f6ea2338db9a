package queries

//go:generate mockgen -source=analytics.go -destination=../../../tests/mock/queries/analytics_mock.go -package=queriesmock

import (
	"context"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/pkg/clock"

	"github.com/google/uuid"
)

type AnalyticsQueries interface {
	AdminSummary(ctx context.Context) (analytics.AdminSummary, error)
	AdminCharts(ctx context.Context) (analytics.AdminCharts, error)
	UserSummary(ctx context.Context, userID uuid.UUID) (analytics.UserSummary, error)
	UserCharts(ctx context.Context, userID uuid.UUID) (analytics.UserCharts, error)
	// MonthlyReport covers the calendar month before now.
	MonthlyReport(ctx context.Context, userID uuid.UUID) (analytics.MonthlyReport, error)
	MonthlyReports(ctx context.Context) ([]analytics.UserMonthlyReport, error)
	Reminders(ctx context.Context) (analytics.ReminderDigest, error)
}

// AnalyticsReadStore loads full snapshots; projections are recomputed per call.
type AnalyticsReadStore interface {
	AdminSnapshot(ctx context.Context) (analytics.Snapshot, error)
	UserSnapshot(ctx context.Context, userID uuid.UUID) (analytics.UserSnapshot, error)
	DigestSnapshot(ctx context.Context) (analytics.DigestSnapshot, error)
}

type analyticsQueriesImpl struct {
	store AnalyticsReadStore
	clock clock.Clock
}

func NewAnalyticsQueries(store AnalyticsReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{store: store, clock: clk}
}

func (q *analyticsQueriesImpl) AdminSummary(ctx context.Context) (analytics.AdminSummary, error) {
	snap, err := q.store.AdminSnapshot(ctx)
	if err != nil {
		return analytics.AdminSummary{}, err
	}
	return analytics.ProjectAdminSummary(snap, q.clock.Now()), nil
}

func (q *analyticsQueriesImpl) AdminCharts(ctx context.Context) (analytics.AdminCharts, error) {
	snap, err := q.store.AdminSnapshot(ctx)
	if err != nil {
		return analytics.AdminCharts{}, err
	}
	return analytics.ProjectAdminCharts(snap, q.clock.Now()), nil
}

func (q *analyticsQueriesImpl) UserSummary(ctx context.Context, userID uuid.UUID) (analytics.UserSummary, error) {
	snap, err := q.store.UserSnapshot(ctx, userID)
	if err != nil {
		return analytics.UserSummary{}, err
	}
	return analytics.ProjectUserSummary(snap), nil
}

func (q *analyticsQueriesImpl) UserCharts(ctx context.Context, userID uuid.UUID) (analytics.UserCharts, error) {
	snap, err := q.store.UserSnapshot(ctx, userID)
	if err != nil {
		return analytics.UserCharts{}, err
	}
	return analytics.ProjectUserCharts(snap, q.clock.Now()), nil
}

func (q *analyticsQueriesImpl) MonthlyReport(ctx context.Context, userID uuid.UUID) (analytics.MonthlyReport, error) {
	snap, err := q.store.UserSnapshot(ctx, userID)
	if err != nil {
		return analytics.MonthlyReport{}, err
	}
	return analytics.ProjectMonthlyReport(snap, q.clock.Now()), nil
}

func (q *analyticsQueriesImpl) MonthlyReports(ctx context.Context) ([]analytics.UserMonthlyReport, error) {
	snap, err := q.store.DigestSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return analytics.ProjectMonthlyReports(snap, q.clock.Now()), nil
}

func (q *analyticsQueriesImpl) Reminders(ctx context.Context) (analytics.ReminderDigest, error) {
	snap, err := q.store.DigestSnapshot(ctx)
	if err != nil {
		return analytics.ReminderDigest{}, err
	}
	return analytics.ReminderCandidates(snap, q.clock.Now()), nil
}
