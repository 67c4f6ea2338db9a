package memory

import (
	"context"
	"log/slog"
	"time"

	"vehicle-parking/internal/infra/uow"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/errs"
	"vehicle-parking/internal/usecase/shared"
)

var errMaxRetriesExceeded = errs.New("transaction failed after max retries")

// UnitOfWork runs fn against staged writes that become visible atomically
// when fn returns nil.
type UnitOfWork struct {
	store       *Store
	maxRetries  int
	base        time.Duration
	lockTimeout time.Duration
	observer    uow.RetryObserver
}

func NewUnitOfWork(store *Store, cfg config.BookingConfig, observer uow.RetryObserver) *UnitOfWork {
	return &UnitOfWork{
		store:       store,
		maxRetries:  cfg.MaxTxRetries,
		base:        cfg.RetryBackoff,
		lockTimeout: cfg.LockTimeout,
		observer:    observer,
	}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; ; attempt++ {
		err := u.run(ctx, fn)
		if err == nil {
			return nil
		}

		code, retryable := uow.RetryableCode(err)
		if !retryable {
			return err
		}
		if attempt >= u.maxRetries {
			slog.Error("transaction failed after max retries", "attempts", attempt+1, "error", err.Error())
			return errs.Mark(errs.Mark(err, errMaxRetriesExceeded), errs.ErrConflict)
		}

		if u.observer != nil {
			u.observer.TxRetried(code)
		}
		wait := uow.CalculateBackoff(attempt, u.base)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"pg_code", code,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
}

// WithinReadOnly discards anything fn stages.
func (u *UnitOfWork) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store, u.lockTimeout)
	defer tx.rollback()
	return fn(ctx, tx)
}

func (u *UnitOfWork) run(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := newMemTx(u.store, u.lockTimeout)
	if err := fn(ctx, tx); err != nil {
		tx.rollback()
		return err
	}
	tx.commit()
	return nil
}
