// Package mealplan implements the weekly meal plan registry using PostgreSQL.
// Each meal slot is stored as a JSONB document.
package mealplan

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const columns = "id, weekday, breakfast, lunch, dinner, updated_by, created_at, updated_at"

// Repo provides meal plan persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new meal plan repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

const getByWeekdaySQL = `SELECT ` + columns + ` FROM meal_plans WHERE weekday = $1`

// GetByWeekday returns the plan of a weekday ("monday".."sunday").
// Returns domain.ErrNotFound when no plan is defined for that day.
func (r *Repo) GetByWeekday(ctx context.Context, weekday string) (*domain.MealPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	plan, err := scanPlan(q.QueryRow(ctx, getByWeekdaySQL, weekday))
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan", weekday)
	}
	return plan, nil
}

const listSQL = `SELECT ` + columns + ` FROM meal_plans
ORDER BY array_position(ARRAY['monday','tuesday','wednesday','thursday','friday','saturday','sunday'], weekday)`

// List returns every defined plan, Monday first.
func (r *Repo) List(ctx context.Context) ([]*domain.MealPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []planRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL); err != nil {
		return nil, fmt.Errorf("list meal_plans: %w", err)
	}

	plans := make([]*domain.MealPlan, 0, len(rows))
	for _, row := range rows {
		plan, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

const upsertSQL = `INSERT INTO meal_plans (id, weekday, breakfast, lunch, dinner, updated_by, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
ON CONFLICT (weekday) DO UPDATE
SET breakfast = EXCLUDED.breakfast, lunch = EXCLUDED.lunch, dinner = EXCLUDED.dinner,
    updated_by = EXCLUDED.updated_by, updated_at = EXCLUDED.updated_at
RETURNING ` + columns

// Upsert creates the plan of a weekday or replaces all three meal slots of
// the existing one. The id of an existing plan is kept.
func (r *Repo) Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	breakfast, err := json.Marshal(plan.Breakfast)
	if err != nil {
		return nil, fmt.Errorf("encode breakfast: %w", err)
	}
	lunch, err := json.Marshal(plan.Lunch)
	if err != nil {
		return nil, fmt.Errorf("encode lunch: %w", err)
	}
	dinner, err := json.Marshal(plan.Dinner)
	if err != nil {
		return nil, fmt.Errorf("encode dinner: %w", err)
	}

	saved, err := scanPlan(q.QueryRow(ctx, upsertSQL,
		plan.ID, plan.Weekday, breakfast, lunch, dinner, plan.UpdatedBy, plan.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan", plan.Weekday)
	}
	return saved, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type planRow struct {
	ID        uuid.UUID `db:"id"`
	Weekday   string    `db:"weekday"`
	Breakfast []byte    `db:"breakfast"`
	Lunch     []byte    `db:"lunch"`
	Dinner    []byte    `db:"dinner"`
	UpdatedBy uuid.UUID `db:"updated_by"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func scanPlan(row pgx.Row) (*domain.MealPlan, error) {
	var r planRow
	if err := row.Scan(&r.ID, &r.Weekday, &r.Breakfast, &r.Lunch, &r.Dinner,
		&r.UpdatedBy, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, err
	}
	return r.toDomain()
}

func (r planRow) toDomain() (*domain.MealPlan, error) {
	plan := &domain.MealPlan{
		ID:        r.ID,
		Weekday:   r.Weekday,
		UpdatedBy: r.UpdatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}

	slots := []struct {
		name string
		raw  []byte
		dst  *domain.MealSlot
	}{
		{"breakfast", r.Breakfast, &plan.Breakfast},
		{"lunch", r.Lunch, &plan.Lunch},
		{"dinner", r.Dinner, &plan.Dinner},
	}
	for _, s := range slots {
		if len(s.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(s.raw, s.dst); err != nil {
			return nil, fmt.Errorf("meal_plan %s: decode %s: %w", r.Weekday, s.name, err)
		}
	}

	return plan, nil
}
