package components

import (
	"context"

	"vehicle-parking/internal/domain/billing"
	"vehicle-parking/internal/domain/reservation"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/pkg/password"
	"vehicle-parking/internal/usecase"
	"vehicle-parking/internal/usecase/commands"
	"vehicle-parking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
	fx.Invoke(seedAdmin),
)

var usecaseBaseOption = fx.Provide(
	fx.Annotate(
		billing.NewHourlyCalculator,
		fx.As(new(billing.Calculator)),
	),
	reservation.NewServices,
	password.NewDefaultHasher,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAllocationCommands,
		commands.NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLotQueries,
		queries.NewUserQueries,
		queries.NewReservationQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func seedAdmin(lc fx.Lifecycle, auth commands.AuthCommands, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return auth.EnsureAdmin(ctx, cfg.Admin)
		},
	})
}
