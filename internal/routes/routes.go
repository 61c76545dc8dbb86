package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/auth"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/handlers"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/dashboard"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/user"
)

// Deps are the singletons the API is assembled from.
type Deps struct {
	Appointments appointment.Repository
	Barbers      barber.Repository
	Users        user.Repository
	Services     catalog.Repository
	Stats        dashboard.Repository
	AuditLogs    audit.Reader

	Audit   audit.Recorder
	Locker  appointment.SlotLocker
	Revoker auth.Revoker
	Tokens  *auth.Issuer

	Clock            timezone.Clock
	SlotDuration     time.Duration
	CheckEmailDomain user.EmailDomainChecker

	Health map[string]handlers.Pinger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(d.Appointments, d.Locker, d.Audit, d.Clock)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(d.Appointments, d.Audit, d.Clock)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(d.Appointments, d.Audit, d.Clock)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(d.Appointments, d.Audit, d.Clock)
	availabilityUC := ucAppointment.NewGetAvailability(d.Appointments, d.SlotDuration)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		user.NewRegister(d.Users, d.Tokens, d.Audit, d.CheckEmailDomain),
		user.NewLogin(d.Users, d.Tokens),
		user.NewLogout(d.Revoker),
	)

	userHandler := handlers.NewUserHandler(
		user.NewMe(d.Users),
		user.NewUpdateMe(d.Users),
		user.NewListUsers(d.Users),
		user.NewGetUser(d.Users),
	)

	barberHandler := handlers.NewBarberHandler(
		ucBarber.NewListProfiles(d.Barbers),
		ucBarber.NewGetProfile(d.Barbers),
		ucBarber.NewMyProfile(d.Barbers),
		ucBarber.NewCreateProfile(d.Barbers, d.Audit),
		ucBarber.NewUpdateProfile(d.Barbers, d.Audit),
		ucBarber.NewApproveProfile(d.Barbers, d.Audit),
		availabilityUC,
	)

	serviceHandler := handlers.NewServiceHandler(
		catalog.NewListServices(d.Services),
		catalog.NewGetService(d.Services),
		catalog.NewCreateService(d.Services, d.Audit),
		catalog.NewUpdateService(d.Services, d.Audit),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		ucAppointment.NewListAppointments(d.Appointments),
		ucAppointment.NewGetAppointment(d.Appointments),
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
	)

	dashboardHandler := handlers.NewDashboardHandler(dashboard.NewGetStats(d.Stats, d.Clock))
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)
	healthHandler := handlers.NewHealthHandler(d.Health)

	requireAuth := middleware.AuthMiddleware(d.Tokens, d.Revoker)
	optionalAuth := middleware.OptionalAuth(d.Tokens, d.Revoker)
	activeUser := middleware.ActiveUser(d.Users)

	r.GET("/health", healthHandler.Check)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC (token optional)
		// ------------------------------
		public := api.Group("/")
		public.Use(optionalAuth, activeUser)
		{
			public.POST("/register", authHandler.Register)
			public.POST("/login", authHandler.Login)

			public.GET("/barbers", barberHandler.List)
			public.GET("/barbers/:id", barberHandler.Get)
			public.GET("/barbers/:id/availability", barberHandler.Availability)

			public.GET("/services", serviceHandler.List)
			public.GET("/services/:id", serviceHandler.Get)
		}

		// ------------------------------
		// AUTHENTICATED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(requireAuth, activeUser)
		{
			secured.POST("/logout", authHandler.Logout)

			secured.GET("/users", userHandler.List)
			secured.GET("/users/me", userHandler.GetMe)
			secured.PATCH("/users/me", userHandler.UpdateMe)
			secured.GET("/users/:id", userHandler.Get)

			secured.GET("/barbers/me", barberHandler.Mine)
			secured.POST("/barbers", barberHandler.Create)
			secured.PATCH("/barbers/:id", barberHandler.Update)
			secured.POST("/barbers/:id/approve", barberHandler.Approve)

			secured.POST("/services", serviceHandler.Create)
			secured.PATCH("/services/:id", serviceHandler.Update)

			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Get)
			secured.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.POST("/appointments/:id/complete", appointmentHandler.Complete)

			secured.GET("/dashboard/stats", dashboardHandler.Stats)

			secured.GET(
				"/audit-logs",
				middleware.RequireRole(identity.RoleAdmin),
				auditLogsHandler.List,
			)
		}
	}
}
