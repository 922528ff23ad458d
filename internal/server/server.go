package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"academiasport/internal/audit"
	"academiasport/internal/auth"
	"academiasport/internal/booking"
	"academiasport/internal/checkin"
	"academiasport/internal/config"
	"academiasport/internal/email"
	"academiasport/internal/equipment"
	"academiasport/internal/plan"
	"academiasport/internal/schedule"
	"academiasport/internal/user"
	"academiasport/internal/workout"

	"github.com/gin-gonic/gin"
)

// Services are the domain services the HTTP layer serves.
type Services struct {
	Users     user.Service
	Plans     plan.Service
	Audit     audit.Service
	Classes   schedule.Service
	Bookings  booking.Service
	Workouts  workout.Service
	Equipment equipment.Service
	Checkins  checkin.Service
}

// NewServices wires the domain services over repos. mailer may be disabled.
func NewServices(cfg *config.Config, repos Repositories, mailer *email.Service) Services {
	plans := plan.NewService(repos.Plans)
	audits := audit.NewService(repos.Audit, cfg.LoginLogLimit)
	users := user.NewService(repos.Users, plans, audits, mailer)

	return Services{
		Users:     users,
		Plans:     plans,
		Audit:     audits,
		Classes:   schedule.NewService(repos.Classes),
		Bookings:  booking.NewService(repos.Bookings, repos.Classes, users, mailer, cfg.RejectDuplicateBookings),
		Workouts:  workout.NewService(repos.Workouts),
		Equipment: equipment.NewService(repos.Equipment),
		Checkins:  checkin.NewService(repos.Checkins),
	}
}

type Server struct {
	router  *gin.Engine
	http    *http.Server
	limiter *RateLimiter
}

// New builds the router. health may be nil when the backing store has
// nothing to ping.
func New(cfg *config.Config, services Services, health HealthChecker) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLoggingMiddleware(), MetricsMiddleware(), corsMiddleware())

	limiter := NewRateLimiter(cfg.AuthRateLimitRPS, cfg.AuthRateLimitBurst, 3*time.Minute)

	userHandler := user.NewHandler(services.Users)
	planHandler := plan.NewHandler(services.Plans)
	auditHandler := audit.NewHandler(services.Audit)
	classHandler := schedule.NewHandler(services.Classes)
	bookingHandler := booking.NewHandler(services.Bookings)
	workoutHandler := workout.NewHandler(services.Workouts)
	equipmentHandler := equipment.NewHandler(services.Equipment)
	checkinHandler := checkin.NewHandler(services.Checkins)

	api := router.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Use(limiter.Middleware())
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
	}

	users := api.Group("/users/:id")
	{
		users.GET("", userHandler.GetUser)
		users.PUT("", userHandler.UpdateUser)
		users.GET("/bookings", bookingHandler.GetUserBookings)
		users.GET("/workouts", workoutHandler.ListUserWorkouts)
		users.GET("/workouts/summary", workoutHandler.WorkoutSummary)
		users.GET("/checkins", checkinHandler.ListUserCheckins)
		users.GET("/checkins/active", checkinHandler.ActiveCheckin)
	}

	api.GET("/plans", planHandler.ListPlans)
	api.GET("/plans/:id", planHandler.GetPlan)

	api.GET("/classes", classHandler.ListClasses)
	api.POST("/classes/:id/book", bookingHandler.BookClass)
	api.DELETE("/classes/:id/book", bookingHandler.CancelBooking)

	api.POST("/workouts", workoutHandler.CreateWorkout)
	api.GET("/workouts/:id", workoutHandler.GetWorkout)

	api.GET("/equipment", equipmentHandler.ListEquipment)
	api.PUT("/equipment/:id/reserve", equipmentHandler.ReserveEquipment)

	api.POST("/checkins", checkinHandler.CheckIn)
	api.PUT("/checkins/:id/checkout", checkinHandler.CheckOut)

	admin := api.Group("/admin")
	admin.Use(auth.RequireAdmin(services.Users))
	{
		admin.GET("/login-logs", auditHandler.ListLoginLogs)
		admin.POST("/classes", classHandler.CreateClass)
		admin.POST("/equipment", equipmentHandler.CreateEquipment)
	}

	router.GET("/health", Health(health))
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.limiter.Stop()
	return s.http.Shutdown(ctx)
}
