package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/AldebertBarber/aldebert-api/internal/audit"
	"github.com/AldebertBarber/aldebert-api/internal/cache"
	"github.com/AldebertBarber/aldebert-api/internal/config"
	"github.com/AldebertBarber/aldebert-api/internal/handlers"
	infraRepo "github.com/AldebertBarber/aldebert-api/internal/infra/repository"
	"github.com/AldebertBarber/aldebert-api/internal/middleware"
	ucAppointment "github.com/AldebertBarber/aldebert-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.SugaredLogger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	loyaltyRepo := infraRepo.NewLoyaltyGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	var availabilityCache cache.AvailabilityCache = cache.NoopAvailabilityCache{}
	if cfg.RedisURL != "" {
		if redisCache, err := cache.NewRedisAvailabilityCache(cfg.RedisURL, log); err != nil {
			log.Warnw("redis disabled", "error", err)
		} else {
			availabilityCache = redisCache
		}
	}

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, availabilityCache)

	createBookingUC := ucAppointment.NewCreateBooking(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
	)

	cancelUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
	)

	cancelMineUC := ucAppointment.NewCancelMyAppointment(
		appointmentRepo,
		availabilityCache,
		auditDispatcher,
	)

	listUC := ucAppointment.NewListAppointments(appointmentRepo)
	listMineUC := ucAppointment.NewListMyAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	servicesHandler := handlers.NewServicesHandler()

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createBookingUC,
		listUC,
		listMineUC,
		cancelUC,
		cancelMineUC,
	)

	loyaltyHandler := handlers.NewLoyaltyHandler(loyaltyRepo, auditDispatcher)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/status", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "Aldebert Barber API online"})
		})

		// ------------------------------
		// PÚBLICO
		// ------------------------------
		api.GET("/services", servicesHandler.List)
		api.GET("/availability", appointmentHandler.Availability)
		api.POST("/appointments", middleware.OptionalAuth(cfg), appointmentHandler.Create)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/admin/login", authHandler.AdminLogin)

		// ------------------------------
		// BEARER (qualquer papel)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/auth/me", meHandler.GetMe)
		}

		// ------------------------------
		// BEARER (user)
		// ------------------------------
		userAPI := api.Group("/")
		userAPI.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleUser))
		{
			userAPI.GET("/my-appointments", appointmentHandler.ListMine)
			userAPI.DELETE("/my-appointments/:id", appointmentHandler.CancelMine)
			userAPI.GET("/loyalty/me", loyaltyHandler.Mine)
		}

		// ------------------------------
		// BEARER (admin)
		// ------------------------------
		adminAPI := api.Group("/")
		adminAPI.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(middleware.RoleAdmin))
		{
			adminAPI.GET("/appointments", appointmentHandler.ListAll)
			adminAPI.DELETE("/appointments/:id", appointmentHandler.Cancel)

			adminAPI.GET("/loyalty", loyaltyHandler.List)
			adminAPI.POST("/loyalty/:userId/cut", loyaltyHandler.AddCut)
			adminAPI.POST("/loyalty/:userId/remove-cut", loyaltyHandler.RemoveCut)
			adminAPI.POST("/loyalty/:userId/claim", loyaltyHandler.Claim)
		}
	}
}
