package bootstrap

import (
	"vehicle-parking/cmd/bootstrap/components"
	"vehicle-parking/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(clock.NewRealClock),
	JWTModule,
	components.MetricsModule,
	components.CacheModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.DigestModule,
)
