package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/notification"
)

type notificationService interface {
	List(ctx context.Context, input notification.ListInput) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	inbox notificationService
	log   *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(inbox notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{inbox: inbox, log: logger.With("handler", "notification")}
}

// List returns the caller's notifications.
// GET /api/notifications?unread=true
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	unread, err := queryBool(r, "unread")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	list, err := h.inbox.List(r.Context(), notification.ListInput{UnreadOnly: unread, Limit: limit, Offset: offset})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toNotificationResponse))
}

// MarkRead marks one of the caller's notifications as read.
// POST /api/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.inbox.MarkRead(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
