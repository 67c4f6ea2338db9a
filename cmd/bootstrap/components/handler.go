package components

import (
	"vehicle-parking/internal/handler"
	"vehicle-parking/internal/handler/api"
	"vehicle-parking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewParkingHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		func(auth *api.AuthHandler, parking *api.ParkingHandler, admin *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Auth: auth, Parking: parking, Admin: admin}
		},
	),
	fx.Invoke(handler.NewRouter),
)
