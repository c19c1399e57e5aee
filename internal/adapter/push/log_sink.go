// Package push delivers notifications to users in real time.
package push

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// LogSink is the push sink used when no real-time transport is deployed.
// It writes each delivery to the log; clients pick notifications up by
// polling the notifications endpoint.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(log *slog.Logger) *LogSink {
	return &LogSink{log: log.With("component", "push")}
}

// Push implements notification.Sink.
func (s *LogSink) Push(ctx context.Context, userID uuid.UUID, n *domain.Notification) error {
	s.log.InfoContext(ctx, "push notification",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", n.ID.String()),
		slog.String("type", string(n.Type)),
		slog.String("title", n.Title),
	)
	return nil
}
