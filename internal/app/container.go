package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	attendancerepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/attendance"
	inventoryrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/inventory"
	mealplanrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/mealplan"
	notificationrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/notification"
	studentrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/student"
	usagerepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/usage"
	userrepo "github.com/heartmarshall/hostel-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/hostel-backend/internal/adapter/push"
	"github.com/heartmarshall/hostel-backend/internal/auth"
	"github.com/heartmarshall/hostel-backend/internal/config"
	"github.com/heartmarshall/hostel-backend/internal/service/attendance"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
	"github.com/heartmarshall/hostel-backend/internal/service/inventory"
	"github.com/heartmarshall/hostel-backend/internal/service/lowstock"
	"github.com/heartmarshall/hostel-backend/internal/service/mealplan"
	"github.com/heartmarshall/hostel-backend/internal/service/notification"
	"github.com/heartmarshall/hostel-backend/internal/service/student"
)

// Container holds the wired repositories and services shared by the server
// and the one-shot commands.
type Container struct {
	Config *config.Config
	Log    *slog.Logger
	Pool   *pgxpool.Pool

	Users  *userrepo.Repo
	Tokens *auth.TokenManager

	Inventory     *inventory.Service
	MealPlans     *mealplan.Service
	Attendance    *attendance.Service
	Students      *student.Service
	Consumption   *consumption.Service
	LowStock      *lowstock.Service
	Notifications *notification.Service
}

// NewContainer connects to the database and builds every service.
// The caller owns the container and must Close it.
func NewContainer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*Container, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return newContainer(cfg, pool, log), nil
}

func newContainer(cfg *config.Config, pool *pgxpool.Pool, log *slog.Logger) *Container {
	loc := cfg.Scheduler.Location

	// Repositories
	users := userrepo.New(pool)
	items := inventoryrepo.New(pool)
	plans := mealplanrepo.New(pool)
	sessions := attendancerepo.New(pool)
	students := studentrepo.New(pool)
	usage := usagerepo.New(pool)
	notifications := notificationrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	notifier := notification.NewService(log, notifications, users, newSink(cfg.Push, log))
	roll := attendance.NewService(log, sessions, students, loc)
	consumer := consumption.NewService(log, plans, items, usage, roll, notifier, tx, consumption.Options{
		GroupSize:   cfg.Consumption.BaselineGroupSize,
		SystemActor: cfg.Consumption.SystemActor(),
		Location:    loc,
	})

	return &Container{
		Config: cfg,
		Log:    log,
		Pool:   pool,

		Users:  users,
		Tokens: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL),

		Inventory:     inventory.NewService(log, items),
		MealPlans:     mealplan.NewService(log, plans, items),
		Attendance:    roll,
		Students:      student.NewService(log, students),
		Consumption:   consumer,
		LowStock:      lowstock.NewService(log, items, users, notifier, loc),
		Notifications: notifier,
	}
}

func newSink(cfg config.PushConfig, log *slog.Logger) notification.Sink {
	if cfg.WebhookURL == "" {
		return push.NewLogSink(log)
	}
	return push.NewWebhookSink(cfg.WebhookURL, cfg.Timeout, log)
}

// Close releases the database pool.
func (c *Container) Close() {
	c.Pool.Close()
}
