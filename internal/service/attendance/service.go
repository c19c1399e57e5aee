// Package attendance records per-session roll calls and resolves the
// headcount a meal is cooked for.
package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	DefaultLimit = 31
	MaxLimit     = 366
)

type sessionRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error)
	GetByDate(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error)
	List(ctx context.Context, from, to time.Time, limit, offset int) ([]*domain.AttendanceSession, error)
	Create(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error)
	UpdateRecords(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error)
}

type studentRepo interface {
	CountExisting(ctx context.Context, ids []uuid.UUID) (int, error)
}

// Service manages attendance sessions.
type Service struct {
	log      *slog.Logger
	sessions sessionRepo
	students studentRepo
	loc      *time.Location
}

// NewService creates a new attendance service. loc is the timezone of
// calendar dates given as input.
func NewService(log *slog.Logger, sessions sessionRepo, students studentRepo, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      log.With("service", "attendance"),
		sessions: sessions,
		students: students,
		loc:      loc,
	}
}
