//go:build unit

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Booking(t *testing.T) {
	r := NewRecorder()

	r.ObserveBooking("success", 10*time.Millisecond)
	r.ObserveBooking("success", 20*time.Millisecond)
	r.ObserveBooking("capacity", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.bookings.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.bookings.WithLabelValues("capacity")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.bookingTime))
}

func TestRecorder_ReleaseOnlyBillsSuccess(t *testing.T) {
	r := NewRecorder()

	r.ObserveRelease("success", decimal.RequireFromString("12.5"), 90*time.Minute)
	r.ObserveRelease("not_found", decimal.Zero, 0)

	assert.Equal(t, 12.5, testutil.ToFloat64(r.revenue))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.releases.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.releases.WithLabelValues("not_found")))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.TxRetried("40P01")
	r.ObserveHTTP(http.MethodPost, "/api/v1/lots/:id/book", http.StatusCreated, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `parking_tx_retries_total{code="40P01"} 1`))
	assert.True(t, strings.Contains(body, `parking_http_requests_total{method="POST",route="/api/v1/lots/:id/book",status="201"} 1`))
}
