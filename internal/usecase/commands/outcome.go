package commands

import (
	"context"
	"errors"
	"log/slog"

	"vehicle-parking/internal/pkg/errs"

	"github.com/google/uuid"
)

func outcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	switch errs.Category(err) {
	case errs.ErrValidation:
		return OutcomeValidation
	case errs.ErrCapacity:
		return OutcomeCapacity
	case errs.ErrConflict:
		return OutcomeConflict
	case errs.ErrNotFound:
		return OutcomeNotFound
	case errs.ErrForbidden:
		return OutcomeForbidden
	default:
		return OutcomeError
	}
}

// invalidateLots is best effort: a stale entry expires with its TTL.
func invalidateLots(ctx context.Context, cache LotStatusInvalidator, lotIDs ...uuid.UUID) {
	if cache == nil {
		return
	}
	// the write is already committed, so a cancelled request must not skip this
	if err := cache.Invalidate(context.WithoutCancel(ctx), lotIDs...); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		slog.Warn("failed to invalidate lot status cache", "lot_ids", lotIDs, "error", err.Error())
	}
}
