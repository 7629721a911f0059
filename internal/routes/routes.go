package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/medibook/clinic-scheduler/internal/audit"
	"github.com/medibook/clinic-scheduler/internal/cache"
	"github.com/medibook/clinic-scheduler/internal/config"
	"github.com/medibook/clinic-scheduler/internal/handlers"
	infraRepo "github.com/medibook/clinic-scheduler/internal/infra/repository"
	"github.com/medibook/clinic-scheduler/internal/media"
	"github.com/medibook/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/medibook/clinic-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, statsCache *cache.Cache, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		bookingRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		bookingRepo,
		auditDispatcher,
	)

	updateStatusUC := ucAppointment.NewUpdateAppointmentStatus(
		bookingRepo,
		auditDispatcher,
		statsCache,
	)

	listPatientAppointmentsUC := ucAppointment.NewListPatientAppointments(
		bookingRepo,
	)

	listByStatusUC := ucAppointment.NewListAppointmentsByStatus(
		bookingRepo,
	)

	statisticsUC := ucAppointment.NewStatistics(
		bookingRepo,
		statsCache,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(bookingRepo)
	doctorHandler := handlers.NewDoctorHandler(bookingRepo)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		listPatientAppointmentsUC,
		bookingRepo,
	)

	bookingSessionHandler := handlers.NewBookingSessionHandler(
		bookingRepo,
		createAppointmentUC,
	)

	adminHandler := handlers.NewAdminAppointmentHandler(
		listByStatusUC,
		updateStatusUC,
	)

	statisticsHandler := handlers.NewStatisticsHandler(statisticsUC)
	doctorImageHandler := handlers.NewDoctorImageHandler(bookingRepo, uploader)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		public := api.Group("/public")
		{
			public.GET("/specialties", doctorHandler.Specialties)
			public.GET("/doctors", doctorHandler.List)
			public.GET("/doctors/:id", doctorHandler.Get)
			public.GET("/doctors/:id/slots", doctorHandler.Slots)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PATIENT
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg))
		{
			me.GET("", meHandler.GetMe)

			me.POST("/appointments", appointmentHandler.Create)
			me.GET("/appointments", appointmentHandler.List)
			me.GET("/appointments/:id", appointmentHandler.Get)
			me.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			// ------------------------------
			// BOOKING FLOW SESSIONS
			// ------------------------------
			me.POST("/booking-sessions", bookingSessionHandler.Start)
			me.GET("/booking-sessions/:id", bookingSessionHandler.Get)
			me.PUT("/booking-sessions/:id/date", bookingSessionHandler.SetDate)
			me.PUT("/booking-sessions/:id/slot", bookingSessionHandler.SelectSlot)
			me.POST("/booking-sessions/:id/continue", bookingSessionHandler.Continue)
			me.POST("/booking-sessions/:id/submit", bookingSessionHandler.Submit)
			me.DELETE("/booking-sessions/:id", bookingSessionHandler.Abandon)
		}

		// ------------------------------
		// DOCTOR / ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(
			middleware.AuthMiddleware(cfg),
			middleware.RequireRoles(middleware.RoleDoctor, middleware.RoleAdmin),
		)
		{
			admin.GET("/appointments", adminHandler.List)
			admin.PATCH("/appointments/:id/status", adminHandler.UpdateStatus)

			admin.GET("/statistics/appointments", statisticsHandler.Appointments)
			admin.GET("/statistics/patients", statisticsHandler.Patients)

			admin.POST("/doctors/:id/image", doctorImageHandler.Upload)
		}
	}
}
