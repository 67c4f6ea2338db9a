package commands

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LotStatusInvalidator drops cached availability for lots whose spots changed.
// Called after commit only.
type LotStatusInvalidator interface {
	Invalidate(ctx context.Context, lotIDs ...uuid.UUID) error
}

// Outcome labels reported to Recorder.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeConflict   = "conflict"
	OutcomeCapacity   = "capacity"
	OutcomeNotFound   = "not_found"
	OutcomeForbidden  = "forbidden"
	OutcomeError      = "error"
)

type Recorder interface {
	ObserveBooking(outcome string, elapsed time.Duration)
	ObserveRelease(outcome string, cost decimal.Decimal, parked time.Duration)
}
