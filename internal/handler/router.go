package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"vehicle-parking/internal/domain/user"
	"vehicle-parking/internal/handler/api"
	"vehicle-parking/internal/handler/middleware"
	"vehicle-parking/internal/infra/metrics"
	"vehicle-parking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Parking *api.ParkingHandler
	Admin   *api.AdminHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	recorder *metrics.Recorder,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, recorder, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(recorder))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, recorder *metrics.Recorder, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(recorder.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
				{Method: http.MethodPut, Path: "/me", Handler: h.Auth.UpdateMe},
			})
		}

		driver := apiGroup.Group("/user")
		driver.Use(authMiddleware.RequireAuth())
		{
			addRoutes(driver, []route{
				{Method: http.MethodGet, Path: "/parking-lots", Handler: h.Parking.ListLots},
				{Method: http.MethodPost, Path: "/book", Handler: h.Parking.Book},
				{Method: http.MethodPost, Path: "/vacate", Handler: h.Parking.Vacate},
				{Method: http.MethodGet, Path: "/reservations", Handler: h.Parking.ListReservations},
				{Method: http.MethodGet, Path: "/reservations/active", Handler: h.Parking.ActiveReservation},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Parking.Summary},
				{Method: http.MethodGet, Path: "/charts", Handler: h.Parking.Charts},
				{Method: http.MethodGet, Path: "/reports/monthly", Handler: h.Parking.MonthlyReport},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/parking-lots", Handler: h.Admin.ListLots},
				{Method: http.MethodPost, Path: "/parking-lots", Handler: h.Admin.CreateLot},
				{Method: http.MethodGet, Path: "/parking-lots/:id", Handler: h.Admin.GetLot},
				{Method: http.MethodPut, Path: "/parking-lots/:id", Handler: h.Admin.UpdateLot},
				{Method: http.MethodDelete, Path: "/parking-lots/:id", Handler: h.Admin.DeleteLot},
				{Method: http.MethodGet, Path: "/parking-lots/:id/spots", Handler: h.Admin.ListSpots},
				{Method: http.MethodDelete, Path: "/parking-lots/:id/spots/:spotId", Handler: h.Admin.DeleteSpot},
				{Method: http.MethodGet, Path: "/spots/:spotId/details", Handler: h.Admin.SpotDetails},
				{Method: http.MethodGet, Path: "/users", Handler: h.Admin.ListUsers},
				{Method: http.MethodGet, Path: "/summary", Handler: h.Admin.Summary},
				{Method: http.MethodGet, Path: "/charts", Handler: h.Admin.Charts},
				{Method: http.MethodGet, Path: "/reports/monthly", Handler: h.Admin.MonthlyReports},
				{Method: http.MethodGet, Path: "/reminders", Handler: h.Admin.Reminders},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
