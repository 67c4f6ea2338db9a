package metrics

import (
	"time"

	"github.com/shopspring/decimal"
)

type NoopRecorder struct{}

func (NoopRecorder) ObserveBooking(string, time.Duration)                  {}
func (NoopRecorder) ObserveRelease(string, decimal.Decimal, time.Duration) {}
func (NoopRecorder) TxRetried(string)                                      {}
func (NoopRecorder) ObserveHTTP(string, string, int, time.Duration)        {}
