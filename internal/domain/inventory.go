package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InventoryItem is a stock-keeping unit of the hostel kitchen or store.
type InventoryItem struct {
	ID           uuid.UUID
	Name         string
	Category     ItemCategory
	CurrentStock decimal.Decimal
	Unit         Unit
	MinimumStock decimal.Decimal
	CostPerUnit  decimal.Decimal
	LastUpdated  time.Time
	CreatedAt    time.Time
}

// IsLow reports whether the item has reached its reorder threshold.
func (i *InventoryItem) IsLow() bool {
	return i.CurrentStock.LessThanOrEqual(i.MinimumStock)
}

// IsOut reports whether nothing is left in stock.
func (i *InventoryItem) IsOut() bool {
	return i.CurrentStock.IsZero()
}

// ItemFilter narrows an inventory listing.
type ItemFilter struct {
	Category     *ItemCategory
	LowStockOnly bool
	Search       string
	Limit        int
	Offset       int
}
