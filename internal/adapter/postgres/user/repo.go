// Package user implements staff account persistence using PostgreSQL.
package user

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

const columns = "id, name, email, role, created_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new user repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Role:      domain.UserRole(r.Role),
		CreatedAt: r.CreatedAt,
	}
}

// ListByRoles returns every user holding one of roles, ordered by name.
func (r *Repo) ListByRoles(ctx context.Context, roles ...domain.UserRole) ([]*domain.User, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}

	query, args, err := postgres.Builder.Select(columns).From("users").
		Where(sq.Eq{"role": names}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}

	users := make([]*domain.User, len(rows))
	for i, row := range rows {
		users[i] = row.toDomain()
	}
	return users, nil
}

const upsertSQL = `INSERT INTO users (id, name, email, role, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT ((lower(email))) DO UPDATE SET name = EXCLUDED.name, role = EXCLUDED.role
RETURNING ` + columns

// Upsert creates a user or, when the email is already registered, updates
// its name and role. The existing id is kept.
func (r *Repo) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var row userRow
	err := q.QueryRow(ctx, upsertSQL, u.ID, u.Name, u.Email, string(u.Role), u.CreatedAt).
		Scan(&row.ID, &row.Name, &row.Email, &row.Role, &row.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}
	return row.toDomain(), nil
}
