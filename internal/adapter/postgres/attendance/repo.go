// Package attendance implements attendance session persistence using PostgreSQL.
package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	table   = "attendance_sessions"
	columns = "id, session_type, session_date, present_count, absent_count, total_students, records, marked_by, marked_at, created_at, updated_at"

	uniqueTypeDate = "ux_attendance_sessions_type_date"
)

// Repo provides attendance session persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new attendance repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const getByIDSQL = `SELECT ` + columns + ` FROM attendance_sessions WHERE id = $1`

// GetByID returns a session by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	s, err := scanSession(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "attendance_session", id)
	}
	return s, nil
}

const getByDateSQL = `SELECT ` + columns + ` FROM attendance_sessions WHERE session_type = $1 AND session_date = $2`

// GetByDate returns the session of a type held on the calendar day of date.
// Returns domain.ErrNotFound when attendance was not taken that day.
func (r *Repo) GetByDate(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	day := domain.FormatDate(date)
	s, err := scanSession(q.QueryRow(ctx, getByDateSQL, string(sessionType), day))
	if err != nil {
		return nil, postgres.MapError(err, "attendance_session", string(sessionType)+" "+day)
	}
	return s, nil
}

// List returns sessions between from and to inclusive, newest first.
// Zero bounds are open.
func (r *Repo) List(ctx context.Context, from, to time.Time, limit, offset int) ([]*domain.AttendanceSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := postgres.Builder.Select(columns).From(table).OrderBy("session_date DESC", "session_type")
	if !from.IsZero() {
		sel = sel.Where(sq.GtOrEq{"session_date": domain.FormatDate(from)})
	}
	if !to.IsZero() {
		sel = sel.Where(sq.LtOrEq{"session_date": domain.FormatDate(to)})
	}
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}
	if offset > 0 {
		sel = sel.Offset(uint64(offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list attendance_sessions: %w", err)
	}

	var rows []sessionRow
	if err := pgxscan.Select(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list attendance_sessions: %w", err)
	}

	sessions := make([]*domain.AttendanceSession, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

const createSQL = `INSERT INTO attendance_sessions
(id, session_type, session_date, present_count, absent_count, total_students, records, marked_by, marked_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
RETURNING ` + columns

// Create inserts a session. A second session of the same type on the same
// day yields domain.ErrConflict.
func (r *Repo) Create(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	records, err := encodeRecords(s.Records)
	if err != nil {
		return nil, err
	}

	day := domain.FormatDate(s.SessionDate)
	created, err := scanSession(q.QueryRow(ctx, createSQL,
		s.ID, string(s.SessionType), day, s.PresentCount, s.AbsentCount, s.TotalStudents,
		records, s.MarkedBy, s.MarkedAt, s.CreatedAt,
	))
	if err != nil {
		if postgres.IsUniqueViolation(err, uniqueTypeDate) {
			return nil, fmt.Errorf("attendance_session %s %s: %w", s.SessionType, day, domain.ErrConflict)
		}
		return nil, postgres.MapError(err, "attendance_session", s.ID)
	}
	return created, nil
}

const updateRecordsSQL = `UPDATE attendance_sessions
SET records = $2, present_count = $3, absent_count = $4, total_students = $5,
    marked_by = $6, marked_at = $7, updated_at = $8
WHERE id = $1
RETURNING ` + columns

// UpdateRecords replaces the records of a session together with the counts
// derived from them.
func (r *Repo) UpdateRecords(ctx context.Context, s *domain.AttendanceSession) (*domain.AttendanceSession, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	records, err := encodeRecords(s.Records)
	if err != nil {
		return nil, err
	}

	updated, err := scanSession(q.QueryRow(ctx, updateRecordsSQL,
		s.ID, records, s.PresentCount, s.AbsentCount, s.TotalStudents, s.MarkedBy, s.MarkedAt, s.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "attendance_session", s.ID)
	}
	return updated, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type recordJSON struct {
	StudentID uuid.UUID `json:"studentId"`
	Status    string    `json:"status"`
}

func encodeRecords(records []domain.AttendanceRecord) ([]byte, error) {
	out := make([]recordJSON, len(records))
	for i, r := range records {
		out[i] = recordJSON{StudentID: r.StudentID, Status: string(r.Status)}
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode attendance records: %w", err)
	}
	return b, nil
}

type sessionRow struct {
	ID            uuid.UUID `db:"id"`
	SessionType   string    `db:"session_type"`
	SessionDate   time.Time `db:"session_date"`
	PresentCount  int       `db:"present_count"`
	AbsentCount   int       `db:"absent_count"`
	TotalStudents int       `db:"total_students"`
	Records       []byte    `db:"records"`
	MarkedBy      uuid.UUID `db:"marked_by"`
	MarkedAt      time.Time `db:"marked_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func scanSession(row pgx.Row) (*domain.AttendanceSession, error) {
	var r sessionRow
	if err := row.Scan(&r.ID, &r.SessionType, &r.SessionDate, &r.PresentCount, &r.AbsentCount,
		&r.TotalStudents, &r.Records, &r.MarkedBy, &r.MarkedAt, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func (r sessionRow) toDomain() (*domain.AttendanceSession, error) {
	var raw []recordJSON
	if len(r.Records) > 0 {
		if err := json.Unmarshal(r.Records, &raw); err != nil {
			return nil, fmt.Errorf("attendance_session %s: decode records: %w", r.ID, err)
		}
	}

	records := make([]domain.AttendanceRecord, len(raw))
	for i, rec := range raw {
		records[i] = domain.AttendanceRecord{StudentID: rec.StudentID, Status: domain.AttendanceStatus(rec.Status)}
	}

	return &domain.AttendanceSession{
		ID:            r.ID,
		SessionType:   domain.SessionType(r.SessionType),
		SessionDate:   r.SessionDate,
		PresentCount:  r.PresentCount,
		AbsentCount:   r.AbsentCount,
		TotalStudents: r.TotalStudents,
		Records:       records,
		MarkedBy:      r.MarkedBy,
		MarkedAt:      r.MarkedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}
