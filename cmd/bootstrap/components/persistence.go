package components

import (
	"context"
	"fmt"
	"log/slog"

	"vehicle-parking/internal/infra/db"
	"vehicle-parking/internal/infra/memory"
	"vehicle-parking/internal/infra/readstore"
	"vehicle-parking/internal/infra/uow"
	"vehicle-parking/internal/pkg/config"
	"vehicle-parking/internal/usecase/queries"
	"vehicle-parking/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewStores,
	),
)

// Stores is everything the use cases need from storage, for whichever
// backend STORAGE_DRIVER selects.
type Stores struct {
	fx.Out

	UnitOfWork   shared.UnitOfWork
	Lots         queries.LotReadStore
	Reservations queries.ReservationReadStore
	Users        queries.UserReadStore
	Analytics    queries.AnalyticsReadStore
}

func NewStores(lc fx.Lifecycle, cfg config.Config, observer uow.RetryObserver) (Stores, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
		return newMemoryStores(cfg, observer), nil
	case config.StorageDriverPostgres:
		return newPostgresStores(lc, cfg, observer)
	default:
		return Stores{}, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.Storage.Driver)
	}
}

func newPostgresStores(lc fx.Lifecycle, cfg config.Config, observer uow.RetryObserver) (Stores, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Stores{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return Stores{
		UnitOfWork:   uow.NewPostgresUoW(pool, cfg.Booking, observer),
		Lots:         readstore.NewLotReadStore(pool),
		Reservations: readstore.NewReservationReadStore(pool),
		Users:        readstore.NewUserReadStore(pool),
		Analytics:    readstore.NewAnalyticsReadStore(pool),
	}, nil
}

func newMemoryStores(cfg config.Config, observer uow.RetryObserver) Stores {
	store := memory.NewStore()
	reads := memory.NewReadStore(store)
	return Stores{
		UnitOfWork:   memory.NewUnitOfWork(store, cfg.Booking, observer),
		Lots:         reads,
		Reservations: reads,
		Users:        reads,
		Analytics:    reads,
	}
}
