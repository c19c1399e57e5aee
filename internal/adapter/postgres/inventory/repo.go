// Package inventory implements the inventory ledger using PostgreSQL.
// Stock changes made by consumption go through Debit, a single conditional
// UPDATE, so concurrent debits can never drive stock below zero.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	table   = "inventory_items"
	columns = "id, name, category, current_stock, unit, minimum_stock, cost_per_unit, last_updated, created_at"
)

// Repo provides inventory item persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new inventory repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

const getByIDSQL = `SELECT ` + columns + ` FROM inventory_items WHERE id = $1`

// GetByID returns an item by primary key.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", id)
	}
	return item, nil
}

// List returns items matching the filter ordered by name, plus the total
// number of matches ignoring paging.
func (r *Repo) List(ctx context.Context, f domain.ItemFilter) ([]*domain.InventoryItem, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.And{}
	if f.Category != nil {
		where = append(where, sq.Eq{"category": string(*f.Category)})
	}
	if f.LowStockOnly {
		where = append(where, sq.Expr("current_stock <= minimum_stock"))
	}
	if s := domain.NormalizeName(f.Search); s != "" {
		where = append(where, sq.Like{"lower(name)": "%" + s + "%"})
	}

	countSQL, countArgs, err := postgres.Builder.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count inventory_items: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory_items: %w", err)
	}

	sel := postgres.Builder.Select(columns).From(table).Where(where).OrderBy("lower(name)")
	if f.Limit > 0 {
		sel = sel.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		sel = sel.Offset(uint64(f.Offset))
	}

	listSQL, listArgs, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inventory_items: %w", err)
	}

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list inventory_items: %w", err)
	}

	return toDomainItems(rows), total, nil
}

const listLowSQL = `SELECT ` + columns + ` FROM inventory_items
WHERE current_stock <= minimum_stock
ORDER BY current_stock, lower(name)`

// ListLow returns every item at or below its minimum stock, emptiest first.
func (r *Repo) ListLow(ctx context.Context) ([]*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []itemRow
	if err := pgxscan.Select(ctx, q, &rows, listLowSQL); err != nil {
		return nil, fmt.Errorf("list low inventory_items: %w", err)
	}
	return toDomainItems(rows), nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

const createSQL = `INSERT INTO inventory_items
(id, name, category, current_stock, unit, minimum_stock, cost_per_unit, last_updated, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + columns

// Create inserts a new item. A name that differs from an existing one only in
// case yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanItem(q.QueryRow(ctx, createSQL,
		item.ID, item.Name, string(item.Category), item.CurrentStock, string(item.Unit),
		item.MinimumStock, item.CostPerUnit, item.LastUpdated, item.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", item.Name)
	}
	return created, nil
}

const updateSQL = `UPDATE inventory_items
SET name = $2, category = $3, current_stock = $4, unit = $5, minimum_stock = $6, cost_per_unit = $7, last_updated = $8
WHERE id = $1
RETURNING ` + columns

// Update overwrites the editable fields of an item, including a manual
// restock of current_stock.
func (r *Repo) Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanItem(q.QueryRow(ctx, updateSQL,
		item.ID, item.Name, string(item.Category), item.CurrentStock, string(item.Unit),
		item.MinimumStock, item.CostPerUnit, item.LastUpdated,
	))
	if err != nil {
		return nil, postgres.MapError(err, "inventory_item", item.ID)
	}
	return updated, nil
}

const deleteSQL = `DELETE FROM inventory_items WHERE id = $1`

// Delete removes an item. Returns domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "inventory_item", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("inventory_item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

const debitSQL = `UPDATE inventory_items
SET current_stock = current_stock - $2, last_updated = $3
WHERE id = $1 AND current_stock >= $2
RETURNING current_stock`

// Debit subtracts amount from the stock of an item and returns the new stock.
// When the item holds less than amount nothing changes and an
// *domain.InsufficientStockError is returned.
func (r *Repo) Debit(ctx context.Context, id uuid.UUID, amount decimal.Decimal, now time.Time) (decimal.Decimal, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var stock decimal.Decimal
	err := q.QueryRow(ctx, debitSQL, id, amount, now).Scan(&stock)
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return decimal.Zero, postgres.MapError(err, "inventory_item", id)
	}

	item, err := scanItem(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return decimal.Zero, postgres.MapError(err, "inventory_item", id)
	}

	return decimal.Zero, &domain.InsufficientStockError{
		ItemID:    item.ID,
		ItemName:  item.Name,
		Unit:      item.Unit,
		Available: item.CurrentStock,
		Required:  amount,
	}
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type itemRow struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	Category     string          `db:"category"`
	CurrentStock decimal.Decimal `db:"current_stock"`
	Unit         string          `db:"unit"`
	MinimumStock decimal.Decimal `db:"minimum_stock"`
	CostPerUnit  decimal.Decimal `db:"cost_per_unit"`
	LastUpdated  time.Time       `db:"last_updated"`
	CreatedAt    time.Time       `db:"created_at"`
}

func scanItem(row pgx.Row) (*domain.InventoryItem, error) {
	var r itemRow
	if err := row.Scan(
		&r.ID, &r.Name, &r.Category, &r.CurrentStock, &r.Unit,
		&r.MinimumStock, &r.CostPerUnit, &r.LastUpdated, &r.CreatedAt,
	); err != nil {
		return nil, err
	}
	return r.toDomain(), nil
}

func (r itemRow) toDomain() *domain.InventoryItem {
	return &domain.InventoryItem{
		ID:           r.ID,
		Name:         r.Name,
		Category:     domain.ItemCategory(r.Category),
		CurrentStock: r.CurrentStock,
		Unit:         domain.Unit(r.Unit),
		MinimumStock: r.MinimumStock,
		CostPerUnit:  r.CostPerUnit,
		LastUpdated:  r.LastUpdated,
		CreatedAt:    r.CreatedAt,
	}
}

func toDomainItems(rows []itemRow) []*domain.InventoryItem {
	items := make([]*domain.InventoryItem, len(rows))
	for i, row := range rows {
		items[i] = row.toDomain()
	}
	return items
}
