//go:build unit

package digest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/digest"
	queriesmock "vehicle-parking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingOutbox struct {
	mu         sync.Mutex
	claims     map[string]bool
	published  []digest.Notification
	publishErr error
}

func (o *recordingOutbox) Claim(_ context.Context, key string, _ time.Duration) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.claims[key] {
		return false, nil
	}
	o.claims[key] = true
	return true, nil
}

func (o *recordingOutbox) Release(_ context.Context, key string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.claims, key)
	return nil
}

func (o *recordingOutbox) Publish(_ context.Context, notifications []digest.Notification) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.publishErr != nil {
		return o.publishErr
	}
	o.published = append(o.published, notifications...)
	return nil
}

type SchedulerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	analytics *queriesmock.MockAnalyticsQueries
	outbox    *recordingOutbox
	clock     *clock.MockClock
	scheduler *digest.Scheduler
	alice     analytics.UserProfile
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.analytics = queriesmock.NewMockAnalyticsQueries(s.ctrl)
	s.outbox = &recordingOutbox{claims: map[string]bool{}}
	s.clock = clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))
	s.alice = analytics.UserProfile{ID: uuid.New(), Username: "alice", Email: "alice@example.com"}

	scheduler, err := digest.NewScheduler(config.NewTestConfig().Digest, s.analytics, s.outbox, s.clock)
	s.Require().NoError(err)
	s.scheduler = scheduler
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *SchedulerTestSuite) reminderDigest() analytics.ReminderDigest {
	return analytics.ReminderDigest{
		Reminders: []analytics.Reminder{
			{User: s.alice, Inactive: true},
			{User: analytics.UserProfile{ID: uuid.New(), Username: "noemail"}, Inactive: true},
		},
	}
}

func (s *SchedulerTestSuite) TestNothingDueBeforeReminderTime() {
	s.analytics.EXPECT().Reminders(gomock.Any()).Times(0)
	s.analytics.EXPECT().MonthlyReports(gomock.Any()).Times(0)

	s.Require().NoError(s.scheduler.RunDue(context.Background()))
	s.Empty(s.outbox.published)
}

func (s *SchedulerTestSuite) TestDailyReminderSentOncePerDay() {
	s.clock.Set(time.Date(2025, 3, 10, 19, 30, 0, 0, time.UTC))
	s.analytics.EXPECT().Reminders(gomock.Any()).Return(s.reminderDigest(), nil).Times(1)

	s.Require().NoError(s.scheduler.RunDue(context.Background()))
	s.clock.Add(time.Hour)
	s.Require().NoError(s.scheduler.RunDue(context.Background()))

	s.Require().Len(s.outbox.published, 1, "users without an email are skipped")
	got := s.outbox.published[0]
	s.Equal(digest.KindDailyReminder, got.Kind)
	s.Equal(s.alice.ID, got.UserID)
	s.Equal("alice@example.com", got.Email)
	s.True(s.outbox.claims["digest:reminders:2025-03-10"])
}

func (s *SchedulerTestSuite) TestMonthlyReportOnFirstOfMonth() {
	s.clock.Set(time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC))
	report := analytics.MonthlyReport{Month: "2025-03", TotalReservations: 2, TotalSpent: decimal.RequireFromString("20")}
	s.analytics.EXPECT().MonthlyReports(gomock.Any()).
		Return([]analytics.UserMonthlyReport{{User: s.alice, Report: report}}, nil).Times(1)

	s.Require().NoError(s.scheduler.RunDue(context.Background()))

	s.Require().Len(s.outbox.published, 1)
	s.Equal(digest.KindMonthlyReport, s.outbox.published[0].Kind)
	s.Equal(report, s.outbox.published[0].Payload)
	s.True(s.outbox.claims["digest:reports:2025-03"])
}

func (s *SchedulerTestSuite) TestNoMonthlyReportAfterTheFirst() {
	s.clock.Set(time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC))
	s.analytics.EXPECT().MonthlyReports(gomock.Any()).Times(0)

	s.Require().NoError(s.scheduler.RunDue(context.Background()))
	s.Empty(s.outbox.published)
}

func (s *SchedulerTestSuite) TestFailedPublishReleasesClaimForRetry() {
	s.clock.Set(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))
	s.analytics.EXPECT().Reminders(gomock.Any()).Return(s.reminderDigest(), nil).Times(2)
	s.outbox.publishErr = errors.New("stream unavailable")

	err := s.scheduler.RunDue(context.Background())
	s.Require().Error(err)
	s.False(s.outbox.claims["digest:reminders:2025-03-10"])

	s.outbox.publishErr = nil
	s.Require().NoError(s.scheduler.RunDue(context.Background()))
	s.Len(s.outbox.published, 1)
}

func (s *SchedulerTestSuite) TestQueryFailureReleasesClaim() {
	s.clock.Set(time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC))
	s.analytics.EXPECT().Reminders(gomock.Any()).Return(analytics.ReminderDigest{}, errors.New("connection reset")).Times(1)

	s.Require().Error(s.scheduler.RunDue(context.Background()))
	s.Empty(s.outbox.claims)
}

func (s *SchedulerTestSuite) TestInvalidTimeOfDay() {
	cfg := config.NewTestConfig().Digest
	cfg.ReminderAt = "25:99"

	_, err := digest.NewScheduler(cfg, s.analytics, s.outbox, s.clock)
	s.Error(err)
}
