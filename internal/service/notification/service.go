package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	ExistsSince(ctx context.Context, userID uuid.UUID, title string, since time.Time) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type userRepo interface {
	ListByRoles(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error)
}

// Sink delivers a stored notification to the user in real time.
type Sink interface {
	Push(ctx context.Context, userID uuid.UUID, n *domain.Notification) error
}

// Service stores notifications and forwards them to the push sink.
type Service struct {
	log           *slog.Logger
	notifications notificationRepo
	users         userRepo
	sink          Sink
}

// NewService creates a new notification service.
func NewService(
	log *slog.Logger,
	notifications notificationRepo,
	users userRepo,
	sink Sink,
) *Service {
	return &Service{
		log:           log.With("service", "notification"),
		notifications: notifications,
		users:         users,
		sink:          sink,
	}
}

// push forwards n to the sink. Delivery is best-effort: the notification is
// already stored and will be listed on the next poll.
func (s *Service) push(ctx context.Context, n *domain.Notification) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Push(ctx, n.UserID, n); err != nil {
		s.log.WarnContext(ctx, "push notification failed",
			slog.String("user_id", n.UserID.String()),
			slog.String("notification_id", n.ID.String()),
			slog.String("error", err.Error()))
	}
}

func newNotification(userID uuid.UUID, title, message string, typ domain.NotificationType) *domain.Notification {
	return &domain.Notification{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		CreatedAt: time.Now().UTC(),
	}
}
