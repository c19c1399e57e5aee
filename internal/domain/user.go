package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a staff or student account. Only the role matters to the kitchen core:
// it decides who receives alerts.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Role      UserRole
	CreatedAt time.Time
}

// Student is a resident whose attendance is tracked.
type Student struct {
	ID         uuid.UUID
	Name       string
	RoomNumber string
	Active     bool
	CreatedAt  time.Time
}
