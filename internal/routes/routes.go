package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/VittaServices/marketplace-api/internal/audit"
	"github.com/VittaServices/marketplace-api/internal/cache"
	"github.com/VittaServices/marketplace-api/internal/config"
	"github.com/VittaServices/marketplace-api/internal/handlers"
	infraRepo "github.com/VittaServices/marketplace-api/internal/infra/repository"
	"github.com/VittaServices/marketplace-api/internal/middleware"
	ucBooking "github.com/VittaServices/marketplace-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	availabilityCache := cache.NewAvailability(
		rdb,
		time.Duration(cfg.CacheTTLSeconds)*time.Second,
		log,
	)

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	getAvailabilityUC := ucBooking.NewGetAvailability(bookingRepo, availabilityCache)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	transitionBookingUC := ucBooking.NewTransitionBooking(
		bookingRepo,
		auditDispatcher,
		availabilityCache,
	)

	listBookingsUC := ucBooking.NewListBookingsByDate(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		cancelBookingUC,
		transitionBookingUC,
		listBookingsUC,
	)

	serviceHandler := handlers.NewServiceHandler(db)
	scheduleHandler := handlers.NewScheduleHandler(db, availabilityCache)
	settingsHandler := handlers.NewSettingsHandler(db, availabilityCache)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		getAvailabilityUC,
		createBookingUC,
		cancelBookingUC,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA (cliente final)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// cancelamento do cliente pela chave pública, fora do grupo por
		// slug para não conflitar com o wildcard na árvore de rotas
		api.PATCH("/bookings/:publicID/cancel", publicHandler.CancelBooking)

		// ------------------------------
		// API DO PRESTADOR
		// ------------------------------
		providers := api.Group("/providers/:providerID")
		{
			providers.GET("/services", serviceHandler.List)
			providers.POST("/services", serviceHandler.Create)
			providers.PATCH("/services/:serviceID", serviceHandler.Update)

			providers.GET("/services/:serviceID/schedule", scheduleHandler.Get)
			providers.PUT("/services/:serviceID/schedule", scheduleHandler.Update)

			providers.GET("/services/:serviceID/settings", settingsHandler.Get)
			providers.PUT("/services/:serviceID/settings", settingsHandler.Update)

			providers.GET("/services/:serviceID/availability", availabilityHandler.Get)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			providers.POST("/bookings", bookingHandler.Create)
			providers.GET("/bookings", bookingHandler.ListByDate)
			providers.PATCH("/bookings/:id/confirm", bookingHandler.Confirm)
			providers.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			providers.PATCH("/bookings/:id/complete", bookingHandler.Complete)
			providers.PATCH("/bookings/:id/no-show", bookingHandler.MarkNoShow)

			providers.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
