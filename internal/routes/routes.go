package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-scheduler/internal/config"
	"github.com/BruksfildServices01/studio-scheduler/internal/handlers"
	"github.com/BruksfildServices01/studio-scheduler/internal/history"
	infraRepo "github.com/BruksfildServices01/studio-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/studio-scheduler/internal/middleware"
	"github.com/BruksfildServices01/studio-scheduler/internal/notify"
	ucAppointment "github.com/BruksfildServices01/studio-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	queue *notify.Queue,
	cfg *config.Config,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	ledger := history.New(db)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db, ledger)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotMinutes,
	)

	availableDatesUC := ucAppointment.NewAvailableDates(
		availabilityUC,
		cfg.Timezone,
	)

	nextAvailableUC := ucAppointment.NewNextAvailableSlot(
		availabilityUC,
		cfg.Timezone,
		cfg.BookingWindowDays,
	)

	reserveUC := ucAppointment.NewReserveSlot(
		appointmentRepo,
		availabilityUC,
		queue,
		cfg.StaffEmail,
	)

	transitionUC := ucAppointment.NewTransitionStatus(
		appointmentRepo,
		queue,
	)

	cancelByTokenUC := ucAppointment.NewCancelByToken(
		appointmentRepo,
		queue,
		cfg.StaffEmail,
	)

	getByTokenUC := ucAppointment.NewGetAppointmentByToken(
		appointmentRepo,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)

	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		availableDatesUC,
		nextAvailableUC,
		reserveUC,
		getByTokenUC,
		cancelByTokenUC,
		cfg.BookingWindowDays,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		transitionUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		ledger,
		cfg.Timezone,
	)

	scheduleHandler := handlers.NewScheduleHandler(db)
	blockedDateHandler := handlers.NewBlockedDateHandler(db)
	notificationHandler := handlers.NewNotificationHandler(queue, cfg.NotifyRetentionDays)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute))
		{
			publicAPI.GET("/availability", publicHandler.Availability)
			publicAPI.GET("/availability/dates", publicHandler.AvailableDates)
			publicAPI.GET("/availability/next", publicHandler.NextAvailable)

			publicAPI.POST("/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/appointments/:token", publicHandler.GetAppointment)
			publicAPI.PATCH("/appointments/:token/cancel", publicHandler.CancelAppointment)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA (equipe)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.Transition)
			secured.GET("/me/appointments/:id/history", appointmentHandler.History)

			// ------------------------------
			// AGENDA
			// ------------------------------
			secured.GET("/me/schedule", scheduleHandler.Get)
			secured.PUT("/me/schedule", scheduleHandler.Update)

			secured.GET("/me/blocked-dates", blockedDateHandler.List)
			secured.POST("/me/blocked-dates", blockedDateHandler.Create)
			secured.DELETE("/me/blocked-dates/:id", blockedDateHandler.Delete)

			// ------------------------------
			// NOTIFICAÇÕES (operacional)
			// ------------------------------
			secured.GET("/me/notifications", notificationHandler.List)
			secured.POST("/me/notifications/reset-failed", notificationHandler.ResetFailed)
			secured.POST("/me/notifications/purge", notificationHandler.Purge)
		}
	}
}
