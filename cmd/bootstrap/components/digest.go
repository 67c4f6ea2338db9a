package components

import (
	"context"
	"log/slog"

	"vehicle-parking/internal/pkg/clock"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/digest"
	"vehicle-parking/internal/usecase/queries"

	"go.uber.org/fx"
)

var DigestModule = fx.Module("digest",
	fx.Invoke(StartDigestScheduler),
)

// StartDigestScheduler runs the scheduler for the lifetime of the app.
func StartDigestScheduler(lc fx.Lifecycle, cfg config.Config, analytics queries.AnalyticsQueries, outbox digest.Outbox, clk clock.Clock) error {
	if !cfg.Digest.Enabled {
		slog.Info("digest scheduler disabled")
		return nil
	}

	scheduler, err := digest.NewScheduler(cfg.Digest, analytics, outbox, clk)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				_ = scheduler.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
				return nil
			case <-stopCtx.Done():
				return stopCtx.Err()
			}
		},
	})
	return nil
}
