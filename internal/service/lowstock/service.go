// Package lowstock scans the inventory for items at or below their reorder
// threshold and warns kitchen staff at most once per item per day.
package lowstock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Recipients are the roles warned about low stock.
var Recipients = []domain.UserRole{domain.UserRoleAdmin, domain.UserRoleKitchen}

type itemRepo interface {
	ListLow(ctx context.Context) ([]*domain.InventoryItem, error)
}

type userRepo interface {
	ListByRoles(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error)
}

type notifier interface {
	NotifyOncePerDay(ctx context.Context, user *domain.User, title, message string, typ domain.NotificationType, dayStart time.Time) (bool, error)
}

// Service implements the low-stock check.
type Service struct {
	log      *slog.Logger
	items    itemRepo
	users    userRepo
	notifier notifier
	loc      *time.Location
}

// NewService creates a new low-stock service. loc decides where a calendar
// day starts for deduplication.
func NewService(log *slog.Logger, items itemRepo, users userRepo, notifier notifier, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      log.With("service", "lowstock"),
		items:    items,
		users:    users,
		notifier: notifier,
		loc:      loc,
	}
}

// CheckResult summarizes one low-stock scan.
type CheckResult struct {
	LowItems   int
	Recipients int
	Created    int
	Skipped    int
	Failed     int
}

// Check warns every admin and kitchen user about each low item, skipping
// warnings they already got today.
func (s *Service) Check(ctx context.Context, now time.Time) (*CheckResult, error) {
	low, err := s.items.ListLow(ctx)
	if err != nil {
		return nil, fmt.Errorf("lowstock.Check: %w", err)
	}

	res := &CheckResult{LowItems: len(low)}
	if len(low) == 0 {
		s.log.DebugContext(ctx, "no low stock items")
		return res, nil
	}

	recipients, err := s.users.ListByRoles(ctx, Recipients...)
	if err != nil {
		return nil, fmt.Errorf("lowstock.Check: %w", err)
	}
	res.Recipients = len(recipients)

	dayStart := domain.DayStart(now, s.loc)
	for _, item := range low {
		title, message, typ := Message(item)
		for _, u := range recipients {
			created, err := s.notifier.NotifyOncePerDay(ctx, u, title, message, typ, dayStart)
			switch {
			case err != nil:
				res.Failed++
				s.log.ErrorContext(ctx, "low stock notification failed",
					slog.String("item", item.Name),
					slog.String("user_id", u.ID.String()),
					slog.String("error", err.Error()))
			case created:
				res.Created++
			default:
				res.Skipped++
			}
		}
	}

	s.log.InfoContext(ctx, "low stock check finished",
		slog.Int("low_items", res.LowItems),
		slog.Int("recipients", res.Recipients),
		slog.Int("created", res.Created),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed))

	return res, nil
}

// Message builds the notification for a low item. The title is the
// deduplication key, so it depends on the item only.
func Message(item *domain.InventoryItem) (title, message string, typ domain.NotificationType) {
	title = "Low stock: " + item.Name
	if item.IsOut() {
		return title,
			fmt.Sprintf("%s is out of stock (minimum %s %s).", item.Name, item.MinimumStock, item.Unit),
			domain.NotificationAlert
	}
	return title,
		fmt.Sprintf("%s is running low: %s %s left (minimum %s %s).",
			item.Name, item.CurrentStock, item.Unit, item.MinimumStock, item.Unit),
		domain.NotificationWarning
}
