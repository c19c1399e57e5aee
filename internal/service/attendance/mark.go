package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

// CreateSession records the roll call of a session. Counts are derived from
// the records. A second session of the same type on the same day yields
// domain.ErrConflict and leaves the first untouched.
func (s *Service) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.AttendanceSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	records, err := s.resolveRecords(ctx, input.Records)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	day := domain.DayStart(input.Date, s.loc)
	session := &domain.AttendanceSession{
		ID:          uuid.New(),
		SessionType: input.SessionType,
		SessionDate: day,
		Records:     records,
		MarkedBy:    userID,
		MarkedAt:    day,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	session.Recount()

	created, err := s.sessions.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create attendance session: %w", err)
	}

	s.log.InfoContext(ctx, "attendance session created",
		slog.String("user_id", userID.String()),
		slog.String("session_type", string(created.SessionType)),
		slog.String("date", domain.FormatDate(created.SessionDate)),
		slog.Int("present", created.PresentCount),
		slog.Int("total", created.TotalStudents),
	)

	return created, nil
}

// UpdateRecords replaces the records of a session and re-derives its counts.
// The logical date of the session is kept.
func (s *Service) UpdateRecords(ctx context.Context, input UpdateRecordsInput) (*domain.AttendanceSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get attendance session: %w", err)
	}

	records, err := s.resolveRecords(ctx, input.Records)
	if err != nil {
		return nil, err
	}

	session.Records = records
	session.Recount()
	session.MarkedBy = userID
	session.MarkedAt = session.SessionDate
	session.UpdatedAt = time.Now().UTC()

	updated, err := s.sessions.UpdateRecords(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("update attendance records: %w", err)
	}

	s.log.InfoContext(ctx, "attendance records updated",
		slog.String("user_id", userID.String()),
		slog.String("session_id", updated.ID.String()),
		slog.Int("present", updated.PresentCount),
		slog.Int("total", updated.TotalStudents),
	)

	return updated, nil
}

// resolveRecords checks that every record refers to a known student.
func (s *Service) resolveRecords(ctx context.Context, in []RecordInput) ([]domain.AttendanceRecord, error) {
	records := make([]domain.AttendanceRecord, len(in))
	ids := make([]uuid.UUID, len(in))
	for i, r := range in {
		records[i] = domain.AttendanceRecord{StudentID: r.StudentID, Status: r.Status}
		ids[i] = r.StudentID
	}
	if len(ids) == 0 {
		return records, nil
	}

	n, err := s.students.CountExisting(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("check students: %w", err)
	}
	if n != len(ids) {
		return nil, domain.NewValidationError("records", fmt.Sprintf("%d unknown student(s)", len(ids)-n))
	}
	return records, nil
}
