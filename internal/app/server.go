package app

import (
	"fmt"
	"net/http"

	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
	"github.com/heartmarshall/hostel-backend/internal/transport/rest"
)

// newServer builds the HTTP server. Only /api/ routes are rate limited.
// Auth wraps Logger so request records carry the caller identity.
func newServer(c *Container, sched *scheduler.Scheduler, limiter *middleware.RateLimiter) *http.Server {
	cfg := c.Config
	loc := cfg.Scheduler.Location
	log := c.Log

	handlers := rest.Handlers{
		Health:        rest.NewHealthHandler(c.Pool, Version, cfg.Scheduler.Enabled),
		Inventory:     rest.NewInventoryHandler(c.Inventory, log),
		MealPlans:     rest.NewMealPlanHandler(c.MealPlans, log),
		Attendance:    rest.NewAttendanceHandler(c.Attendance, loc, log),
		Students:      rest.NewStudentHandler(c.Students, log),
		Usage:         rest.NewUsageHandler(c.Consumption, loc, log),
		Notifications: rest.NewNotificationHandler(c.Notifications, log),
		Jobs:          rest.NewJobsHandler(sched, loc, log),
	}

	handler := middleware.Chain(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(c.Tokens),
		middleware.Logger(log),
	)(handlers.Routes(limiter.Middleware()))

	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}
