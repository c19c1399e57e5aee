// Package student implements student roster persistence using PostgreSQL.
package student

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const columns = "id, name, room_number, active, created_at"

// Repo provides student persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new student repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type studentRow struct {
	ID         uuid.UUID `db:"id"`
	Name       string    `db:"name"`
	RoomNumber string    `db:"room_number"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

const createSQL = `INSERT INTO students (id, name, room_number, active, created_at)
VALUES ($1, $2, $3, $4, $5)`

// Create inserts a student.
func (r *Repo) Create(ctx context.Context, s *domain.Student) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, createSQL, s.ID, s.Name, s.RoomNumber, s.Active, s.CreatedAt); err != nil {
		return postgres.MapError(err, "student", s.ID)
	}
	return nil
}

// List returns students ordered by room then name.
func (r *Repo) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*domain.Student, error) {
	sel := postgres.Builder.Select(columns).From("students").OrderBy("room_number", "name")
	if activeOnly {
		sel = sel.Where(sq.Eq{"active": true})
	}
	if limit > 0 {
		sel = sel.Limit(uint64(limit))
	}
	if offset > 0 {
		sel = sel.Offset(uint64(offset))
	}

	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list students: %w", err)
	}

	var rows []studentRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	out := make([]*domain.Student, len(rows))
	for i, row := range rows {
		out[i] = &domain.Student{
			ID:         row.ID,
			Name:       row.Name,
			RoomNumber: row.RoomNumber,
			Active:     row.Active,
			CreatedAt:  row.CreatedAt,
		}
	}
	return out, nil
}

// CountExisting returns how many of ids belong to known students.
func (r *Repo) CountExisting(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM students WHERE id = ANY($1)`, ids).
		Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return n, nil
}
