package components

import (
	"vehicle-parking/internal/infra/metrics"
	"vehicle-parking/internal/infra/uow"
	"vehicle-parking/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRecorder,
		func(r *metrics.Recorder) commands.Recorder { return r },
		func(r *metrics.Recorder) uow.RetryObserver { return r },
	),
)
