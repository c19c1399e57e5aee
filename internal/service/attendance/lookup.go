package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// AttendanceCount returns the present count of the session of sessionType on
// the calendar day of date, together with the session id. A day without a
// session yields domain.ErrNotFound, which is not the same as zero present.
func (s *Service) AttendanceCount(ctx context.Context, sessionType domain.SessionType, date time.Time) (int, uuid.UUID, error) {
	session, err := s.sessions.GetByDate(ctx, sessionType, domain.DayStart(date, s.loc))
	if err != nil {
		return 0, uuid.Nil, fmt.Errorf("attendance count: %w", err)
	}
	return session.PresentCount, session.ID, nil
}

// Get returns a session by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error) {
	return s.sessions.GetByID(ctx, id)
}

// GetByDate returns the session of sessionType on the calendar day of date.
func (s *Service) GetByDate(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error) {
	if !sessionType.IsValid() {
		return nil, domain.NewValidationError("sessionType", "must be morning or evening")
	}
	return s.sessions.GetByDate(ctx, sessionType, domain.DayStart(date, s.loc))
}

// List returns sessions between two calendar days, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.AttendanceSession, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	var from, to time.Time
	if !input.From.IsZero() {
		from = domain.DayStart(input.From, s.loc)
	}
	if !input.To.IsZero() {
		to = domain.DayStart(input.To, s.loc)
	}
	return s.sessions.List(ctx, from, to, limit, input.Offset)
}
