package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the given role.
func SeedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:        uuid.New(),
		Name:      "Test User " + suffix,
		Email:     "user-" + suffix + "@hostel.test",
		Role:      role,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, name, email, role, created_at) VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Name, user.Email, string(user.Role), user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedItem creates an inventory item with a unique name and the given stock levels.
func SeedItem(t *testing.T, pool *pgxpool.Pool, stock, minimum string) domain.InventoryItem {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	item := domain.InventoryItem{
		ID:           uuid.New(),
		Name:         "Item " + uniqueSuffix(),
		Category:     domain.CategoryGrains,
		CurrentStock: decimal.RequireFromString(stock),
		Unit:         domain.UnitKilogram,
		MinimumStock: decimal.RequireFromString(minimum),
		CostPerUnit:  decimal.NewFromInt(1),
		LastUpdated:  now,
		CreatedAt:    now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inventory_items (id, name, category, current_stock, unit, minimum_stock, cost_per_unit, last_updated, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.Name, string(item.Category), item.CurrentStock, string(item.Unit),
		item.MinimumStock, item.CostPerUnit, item.LastUpdated, item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// CurrentStock reads the stock of an item straight from the table.
func CurrentStock(t *testing.T, pool *pgxpool.Pool, id uuid.UUID) decimal.Decimal {
	t.Helper()

	var stock decimal.Decimal
	err := pool.QueryRow(context.Background(),
		`SELECT current_stock FROM inventory_items WHERE id = $1`, id,
	).Scan(&stock)
	if err != nil {
		t.Fatalf("testhelper: CurrentStock: %v", err)
	}

	return stock
}
