// Package billing turns an elapsed parking interval and an hourly rate into a charge.
package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stored and displayed amounts carry one fractional digit.
const CostPlaces int32 = 1

var nanosPerHour = decimal.NewFromInt(int64(time.Hour))

type Calculator interface {
	Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal
}

type HourlyCalculator struct{}

func NewHourlyCalculator() *HourlyCalculator {
	return &HourlyCalculator{}
}

func (HourlyCalculator) Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	return Cost(start, end, hourlyRate)
}

// Cost = ceil_to_one_decimal(hours(end-start) * rate).
// Negative intervals (clock skew) clamp to zero and a zero interval costs 0.0;
// there is no minimum charge.
func Cost(start, end time.Time, hourlyRate decimal.Decimal) decimal.Decimal {
	elapsed := Elapsed(start, end)
	if elapsed == 0 || hourlyRate.Sign() <= 0 {
		return decimal.Zero
	}
	// single division keeps whole-hour multiples exact before rounding up
	raw := decimal.NewFromInt(int64(elapsed)).Mul(hourlyRate).Div(nanosPerHour)
	return raw.RoundCeil(CostPlaces)
}

// Hours is the unrounded elapsed time in fractional hours, used for reporting.
func Hours(start, end time.Time) decimal.Decimal {
	return decimal.NewFromInt(int64(Elapsed(start, end))).Div(nanosPerHour)
}

func Elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
