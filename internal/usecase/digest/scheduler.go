// Package digest sends the daily reminder and monthly report digests on a
// wall-clock schedule.
package digest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/queries"

	"github.com/google/uuid"
)

type Kind string

const (
	KindDailyReminder Kind = "daily_reminder"
	KindMonthlyReport Kind = "monthly_report"
)

const (
	reminderClaimTTL = 48 * time.Hour
	reportClaimTTL   = 40 * 24 * time.Hour
)

// Notification is one message for one user. Payload is an analytics.Reminder
// or an analytics.MonthlyReport.
type Notification struct {
	Kind     Kind
	UserID   uuid.UUID
	Username string
	Email    string
	Payload  any
}

// Outbox hands notifications to whatever delivers them. A run is sent only
// by the caller whose Claim on its key succeeds.
type Outbox interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	Publish(ctx context.Context, notifications []Notification) error
}

type Scheduler struct {
	analytics  queries.AnalyticsQueries
	outbox     Outbox
	clock      clock.Clock
	interval   time.Duration
	reminderAt time.Duration
	reportAt   time.Duration
	logger     *slog.Logger
}

func NewScheduler(cfg config.DigestConfig, analyticsQueries queries.AnalyticsQueries, outbox Outbox, clk clock.Clock) (*Scheduler, error) {
	reminderAt, err := timeOfDay(cfg.ReminderAt)
	if err != nil {
		return nil, errs.Wrap(err, "invalid DIGEST_REMINDER_AT")
	}
	reportAt, err := timeOfDay(cfg.ReportAt)
	if err != nil {
		return nil, errs.Wrap(err, "invalid DIGEST_REPORT_AT")
	}
	interval := cfg.TickInterval
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		analytics:  analyticsQueries,
		outbox:     outbox,
		clock:      clk,
		interval:   interval,
		reminderAt: reminderAt,
		reportAt:   reportAt,
		logger:     slog.Default().With("component", "digest.scheduler"),
	}, nil
}

func timeOfDay(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// Run checks for due digests every tick. Blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.Info("digest scheduler started", "interval", s.interval.String())

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.RunDue(ctx); err != nil && !errors.Is(err, context.Canceled) {
			s.logger.Error("digest run failed", "error", err.Error())
		}
		select {
		case <-ctx.Done():
			s.logger.Info("digest scheduler stopping")
			return nil
		case <-ticker.C:
		}
	}
}

// RunDue sends the reminders once a day after reminderAt and the reports on
// the 1st after reportAt. Claims keep a run from repeating.
func (s *Scheduler) RunDue(ctx context.Context) error {
	now := s.clock.Now().UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var runErrs []error
	if !now.Before(midnight.Add(s.reminderAt)) {
		key := "digest:reminders:" + midnight.Format(time.DateOnly)
		runErrs = append(runErrs, s.dispatch(ctx, key, reminderClaimTTL, s.reminders))
	}
	if now.Day() == 1 && !now.Before(midnight.Add(s.reportAt)) {
		start, _ := analytics.ReportPeriod(now)
		key := "digest:reports:" + start.Format("2006-01")
		runErrs = append(runErrs, s.dispatch(ctx, key, reportClaimTTL, s.reports))
	}
	return errors.Join(runErrs...)
}

func (s *Scheduler) dispatch(ctx context.Context, key string, ttl time.Duration, build func(context.Context) ([]Notification, error)) error {
	claimed, err := s.outbox.Claim(ctx, key, ttl)
	if err != nil {
		return errs.Wrap(err, "failed to claim "+key)
	}
	if !claimed {
		return nil
	}

	notifications, err := build(ctx)
	if err == nil {
		err = s.outbox.Publish(ctx, notifications)
	}
	if err != nil {
		if releaseErr := s.outbox.Release(context.WithoutCancel(ctx), key); releaseErr != nil {
			s.logger.Warn("failed to release digest claim", "key", key, "error", releaseErr.Error())
		}
		return errs.Wrap(err, "failed to send "+key)
	}

	s.logger.Info("digest sent", "key", key, "notifications", len(notifications))
	return nil
}

func (s *Scheduler) reminders(ctx context.Context) ([]Notification, error) {
	digest, err := s.analytics.Reminders(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(digest.Reminders))
	for _, r := range digest.Reminders {
		if r.User.Email == "" {
			continue
		}
		out = append(out, notificationFor(KindDailyReminder, r.User, r))
	}
	return out, nil
}

func (s *Scheduler) reports(ctx context.Context) ([]Notification, error) {
	reports, err := s.analytics.MonthlyReports(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Notification, 0, len(reports))
	for _, r := range reports {
		if r.User.Email == "" {
			continue
		}
		out = append(out, notificationFor(KindMonthlyReport, r.User, r.Report))
	}
	return out, nil
}

func notificationFor(kind Kind, u analytics.UserProfile, payload any) Notification {
	return Notification{Kind: kind, UserID: u.ID, Username: u.Username, Email: u.Email, Payload: payload}
}
