package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to one user.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      NotificationType
	Read      bool
	CreatedAt time.Time
}
