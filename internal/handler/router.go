package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-booking/internal/handler/api"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/infra/metrics"
	"hotel-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	Booking      *api.BookingHandler
	Inventory    *api.InventoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(metrics.PrometheusMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", metrics.Handler())

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.CheckAvailability},
			{Method: http.MethodGet, Path: "/quote", Handler: h.Availability.Quote},
			{Method: http.MethodGet, Path: "/offers", Handler: h.Availability.SearchOffers},
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Booking.Get},
		})

		admin := apiGroup.Group("/admin")
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: h.Booking.List},
				{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodPut, Path: "/bookings/:id/items/:itemId/room", Handler: h.Booking.AssignRoom},
				{Method: http.MethodPut, Path: "/pricing", Handler: h.Inventory.BulkUpdatePrices},
				{Method: http.MethodDelete, Path: "/pricing/:roomTypeId/:date", Handler: h.Inventory.ResetPriceOverride},
				{Method: http.MethodPut, Path: "/inventory", Handler: h.Inventory.SeedInventory},
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
