package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Weekdays lists valid meal plan keys, Monday first.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// IsValidWeekday reports whether s is a lowercase weekday name.
func IsValidWeekday(s string) bool {
	for _, d := range Weekdays {
		if d == s {
			return true
		}
	}
	return false
}

// PlanItem is the quantity of one inventory item needed per baseline group.
type PlanItem struct {
	InventoryItemID uuid.UUID       `json:"inventoryItemId"`
	Quantity        decimal.Decimal `json:"quantity"`
}

// MealSlot is what is served in one meal: dish names for display and the
// inventory it consumes.
type MealSlot struct {
	Foods     []string   `json:"foods"`
	Inventory []PlanItem `json:"inventory"`
}

// MealPlan is the recurring menu of a weekday.
type MealPlan struct {
	ID        uuid.UUID
	Weekday   string
	Breakfast MealSlot
	Lunch     MealSlot
	Dinner    MealSlot
	UpdatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemsFor returns the inventory consumed by the given meal. A nil result
// means nothing is consumed.
func (p *MealPlan) ItemsFor(meal MealType) []PlanItem {
	switch meal {
	case MealBreakfast:
		return p.Breakfast.Inventory
	case MealLunch:
		return p.Lunch.Inventory
	case MealDinner:
		return p.Dinner.Inventory
	}
	return nil
}
