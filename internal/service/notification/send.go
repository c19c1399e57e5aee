package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Alert sends one notification to every user holding one of roles and
// returns how many were stored. A failure for one recipient does not stop
// delivery to the others; all failures are joined into the returned error.
func (s *Service) Alert(ctx context.Context, roles []domain.UserRole, title, message string, typ domain.NotificationType) (int, error) {
	recipients, err := s.users.ListByRoles(ctx, roles...)
	if err != nil {
		return 0, fmt.Errorf("list alert recipients: %w", err)
	}

	sent := 0
	var errs []error
	for _, u := range recipients {
		n := newNotification(u.ID, title, message, typ)
		if err := s.notifications.Create(ctx, n); err != nil {
			s.log.ErrorContext(ctx, "alert not stored",
				slog.String("user_id", u.ID.String()),
				slog.String("title", title),
				slog.String("error", err.Error()),
			)
			errs = append(errs, fmt.Errorf("create notification for user %s: %w", u.ID, err))
			continue
		}
		s.push(ctx, n)
		sent++
	}

	if len(recipients) == 0 {
		s.log.WarnContext(ctx, "alert has no recipients", slog.String("title", title))
	}

	return sent, errors.Join(errs...)
}

// NotifyOncePerDay stores a notification for user unless one with the same
// title was already created since dayStart. It reports whether a new
// notification was created.
func (s *Service) NotifyOncePerDay(ctx context.Context, user *domain.User, title, message string, typ domain.NotificationType, dayStart time.Time) (bool, error) {
	exists, err := s.notifications.ExistsSince(ctx, user.ID, title, dayStart)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	n := newNotification(user.ID, title, message, typ)
	if err := s.notifications.Create(ctx, n); err != nil {
		return false, fmt.Errorf("create notification for user %s: %w", user.ID, err)
	}
	s.push(ctx, n)

	return true, nil
}
