// Package usage implements the append-only inventory usage log using PostgreSQL.
// Rows are inserted once and never updated.
package usage

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
	table   = "inventory_usage"
	columns = "id, usage_date, meal_type, items, attendance_count, attendance_session_id, recorded_by, source, notes, idempotency_key, created_at"

	// UniqueKeyConstraint guards one usage record per day and meal.
	UniqueKeyConstraint = "ux_inventory_usage_idempotency_key"
)

// Repo provides usage record persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new usage repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `INSERT INTO inventory_usage
(id, usage_date, meal_type, items, attendance_count, attendance_session_id, recorded_by, source, notes, idempotency_key, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + columns

// Create persists a computed usage record as-is. A second record for the
// same idempotency key yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.InventoryUsage) (*domain.InventoryUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	items, err := json.Marshal(u.Items)
	if err != nil {
		return nil, fmt.Errorf("encode usage items: %w", err)
	}

	created, err := scanUsage(q.QueryRow(ctx, createSQL,
		u.ID, domain.FormatDate(u.UsageDate), string(u.MealType), items, u.AttendanceCount,
		u.AttendanceSessionID, u.RecordedBy, string(u.Source), u.Notes, u.IdempotencyKey, u.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_usage", u.IdempotencyKey)
	}
	return created, nil
}

const existsByKeySQL = `SELECT EXISTS(SELECT 1 FROM inventory_usage WHERE idempotency_key = $1)`

// ExistsByKey reports whether usage was already recorded under key.
func (r *Repo) ExistsByKey(ctx context.Context, key string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := q.QueryRow(ctx, existsByKeySQL, key).Scan(&exists); err != nil {
		return false, fmt.Errorf("check inventory_usage %s: %w", key, err)
	}
	return exists, nil
}

const getByIDSQL = `SELECT ` + columns + ` FROM inventory_usage WHERE id = $1`

// GetByID returns a usage record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUsage(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_usage", id)
	}
	return u, nil
}

// List returns usage records matching the filter, newest first, plus the
// total number of matches.
func (r *Repo) List(ctx context.Context, f domain.UsageFilter) ([]*domain.InventoryUsage, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if !f.From.IsZero() {
		where = append(where, sq.GtOrEq{"usage_date": domain.FormatDate(f.From)})
	}
	if !f.To.IsZero() {
		where = append(where, sq.LtOrEq{"usage_date": domain.FormatDate(f.To)})
	}
	if f.MealType != nil {
		where = append(where, sq.Eq{"meal_type": string(*f.MealType)})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count inventory_usage: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory_usage: %w", err)
	}

	sel := postgres.Builder.Select(columns).From(table).Where(where).
		OrderBy("usage_date DESC", "created_at DESC")
	if f.Limit > 0 {
		sel = sel.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		sel = sel.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inventory_usage: %w", err)
	}

	var rows []usageRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list inventory_usage: %w", err)
	}

	out := make([]*domain.InventoryUsage, 0, len(rows))
	for _, row := range rows {
		u, err := row.toDomain()
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type usageRow struct {
	ID                  uuid.UUID  `db:"id"`
	UsageDate           time.Time  `db:"usage_date"`
	MealType            string     `db:"meal_type"`
	Items               []byte     `db:"items"`
	AttendanceCount     int        `db:"attendance_count"`
	AttendanceSessionID *uuid.UUID `db:"attendance_session_id"`
	RecordedBy          uuid.UUID  `db:"recorded_by"`
	Source              string     `db:"source"`
	Notes               string     `db:"notes"`
	IdempotencyKey      string     `db:"idempotency_key"`
	CreatedAt           time.Time  `db:"created_at"`
}

func scanUsage(row pgx.Row) (*domain.InventoryUsage, error) {
	var r usageRow
	if err := row.Scan(&r.ID, &r.UsageDate, &r.MealType, &r.Items, &r.AttendanceCount,
		&r.AttendanceSessionID, &r.RecordedBy, &r.Source, &r.Notes, &r.IdempotencyKey, &r.CreatedAt); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func (r usageRow) toDomain() (*domain.InventoryUsage, error) {
	var items []domain.UsageItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return nil, fmt.Errorf("inventory_usage %s: decode items: %w", r.ID, err)
		}
	}

	return &domain.InventoryUsage{
		ID:                  r.ID,
		UsageDate:           r.UsageDate,
		MealType:            domain.MealType(r.MealType),
		Items:               items,
		AttendanceCount:     r.AttendanceCount,
		AttendanceSessionID: r.AttendanceSessionID,
		RecordedBy:          r.RecordedBy,
		Source:              domain.UsageSource(r.Source),
		Notes:               r.Notes,
		IdempotencyKey:      r.IdempotencyKey,
		CreatedAt:           r.CreatedAt,
	}, nil
}
