//go:build e2e

package cache

import (
	"context"
	"encoding/json"
	"time"

	"vehicle-parking/internal/domain/analytics"
	"vehicle-parking/internal/usecase/digest"

	"github.com/google/uuid"
)

func (s *LotStatusCacheTestSuite) TestStreamOutbox() {
	ctx := context.Background()
	o := NewStreamOutbox(s.client, "test:notifications")

	ok, err := o.Claim(ctx, "digest:reports:2025-02", time.Minute)
	s.Require().NoError(err)
	s.True(ok)
	ok, err = o.Claim(ctx, "digest:reports:2025-02", time.Minute)
	s.Require().NoError(err)
	s.False(ok, "a second replica must not send the same run")

	userID := uuid.New()
	report := analytics.MonthlyReport{Month: "2025-02", TotalReservations: 3, MostUsedLot: "Central Plaza"}
	s.Require().NoError(o.Publish(ctx, []digest.Notification{{
		Kind: digest.KindMonthlyReport, UserID: userID, Username: "alice", Email: "alice@example.com", Payload: report,
	}}))

	entries, err := s.client.XRange(ctx, "test:notifications", "-", "+").Result()
	s.Require().NoError(err)
	s.Require().Len(entries, 1)
	s.Equal("monthly_report", entries[0].Values["kind"])
	s.Equal(userID.String(), entries[0].Values["user_id"])
	s.Equal("alice@example.com", entries[0].Values["email"])

	var got analytics.MonthlyReport
	s.Require().NoError(json.Unmarshal([]byte(entries[0].Values["payload"].(string)), &got))
	s.Equal("Central Plaza", got.MostUsedLot)
	s.Equal(3, got.TotalReservations)

	s.Require().NoError(o.Release(ctx, "digest:reports:2025-02"))
	ok, err = o.Claim(ctx, "digest:reports:2025-02", time.Minute)
	s.Require().NoError(err)
	s.True(ok)
}
