// Package consumption deducts the stock a meal consumes. The scheduled path
// (RunMeal) reads the weekday meal plan and scales it to the attendance the
// meal is cooked for; the manual path (RecordManual) takes the quantities
// from a kitchen user. Both share the calculator and the ledger debit.
package consumption

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	DefaultGroupSize = 10
	DefaultLimit     = 50
	MaxLimit         = 200
)

// AlertRoles receive a notification when a run runs into problems.
var AlertRoles = []domain.UserRole{domain.UserRoleAdmin}

type planRepo interface {
	GetByWeekday(ctx context.Context, weekday string) (*domain.MealPlan, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error)
}

type usageRepo interface {
	Create(ctx context.Context, u *domain.InventoryUsage) (*domain.InventoryUsage, error)
	ExistsByKey(ctx context.Context, key string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error)
	List(ctx context.Context, f domain.UsageFilter) ([]*domain.InventoryUsage, int, error)
}

type attendanceLookup interface {
	AttendanceCount(ctx context.Context, sessionType domain.SessionType, date time.Time) (int, uuid.UUID, error)
}

type alerter interface {
	Alert(ctx context.Context, roles []domain.UserRole, title, message string, typ domain.NotificationType) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options configures the scheduled path.
type Options struct {
	// GroupSize is the headcount meal plan quantities are written for.
	GroupSize int
	// SystemActor is recorded as the author of scheduled usage.
	SystemActor uuid.UUID
	// Location decides the calendar day of a run.
	Location *time.Location
}

// Service implements stock consumption.
type Service struct {
	log        *slog.Logger
	plans      planRepo
	items      itemRepo
	usage      usageRepo
	attendance attendanceLookup
	alerts     alerter
	tx         txManager
	opts       Options
}

// NewService creates a new consumption service.
func NewService(
	log *slog.Logger,
	plans planRepo,
	items itemRepo,
	usage usageRepo,
	attendance attendanceLookup,
	alerts alerter,
	tx txManager,
	opts Options,
) *Service {
	if !domain.IsAllowedGroupSize(opts.GroupSize) {
		opts.GroupSize = DefaultGroupSize
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Service{
		log:        log.With("service", "consumption"),
		plans:      plans,
		items:      items,
		usage:      usage,
		attendance: attendance,
		alerts:     alerts,
		tx:         tx,
		opts:       opts,
	}
}
