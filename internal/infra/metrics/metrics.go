// Package metrics exposes booking and HTTP metrics in Prometheus format.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "parking"

// Recorder owns a private registry so tests can build as many as they need.
type Recorder struct {
	registry *prometheus.Registry

	bookings      *prometheus.CounterVec
	bookingTime   prometheus.Histogram
	releases      *prometheus.CounterVec
	revenue       prometheus.Counter
	parkedTime    prometheus.Histogram
	txRetries     *prometheus.CounterVec
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_total",
			Help:      "Booking attempts by outcome.",
		}, []string{"outcome"}),
		bookingTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "booking_duration_seconds",
			Help:      "Time spent allocating a spot, retries included.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}),
		releases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Release attempts by outcome.",
		}, []string{"outcome"}),
		revenue: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_total",
			Help:      "Sum of billed parking costs.",
		}),
		parkedTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "parked_duration_hours",
			Help:      "Parking duration of completed reservations.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 24, 72},
		}),
		txRetries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retries_total",
			Help:      "Retried transactions by PostgreSQL error code.",
		}, []string{"code"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status.",
		}, []string{"method", "route", "status"}),
		httpDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.bookings, r.bookingTime,
		r.releases, r.revenue, r.parkedTime,
		r.txRetries,
		r.httpRequests, r.httpDurations,
	)
	return r
}

func (r *Recorder) ObserveBooking(outcome string, elapsed time.Duration) {
	r.bookings.WithLabelValues(outcome).Inc()
	r.bookingTime.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveRelease(outcome string, cost decimal.Decimal, parked time.Duration) {
	r.releases.WithLabelValues(outcome).Inc()
	if outcome != "success" {
		return
	}
	r.revenue.Add(cost.InexactFloat64())
	r.parkedTime.Observe(parked.Hours())
}

func (r *Recorder) TxRetried(code string) {
	r.txRetries.WithLabelValues(code).Inc()
}

// ObserveHTTP takes the route template, not the raw path, to bound label
// cardinality.
func (r *Recorder) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDurations.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry is exposed for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
