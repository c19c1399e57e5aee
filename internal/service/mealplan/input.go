package mealplan

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	maxFoods      = 20
	maxFoodLength = 100
	maxItems      = 50
)

// PlanItemInput is an inventory item needed per baseline group.
type PlanItemInput struct {
	InventoryItemID uuid.UUID
	Quantity        decimal.Decimal
}

// MealInput is one meal of a plan.
type MealInput struct {
	Foods     []string
	Inventory []PlanItemInput
}

func (m MealInput) toDomain() domain.MealSlot {
	slot := domain.MealSlot{
		Foods:     make([]string, 0, len(m.Foods)),
		Inventory: make([]domain.PlanItem, len(m.Inventory)),
	}
	for _, f := range m.Foods {
		slot.Foods = append(slot.Foods, strings.TrimSpace(f))
	}
	for i, it := range m.Inventory {
		slot.Inventory[i] = domain.PlanItem{InventoryItemID: it.InventoryItemID, Quantity: it.Quantity}
	}
	return slot
}

// UpsertInput holds the full plan of a weekday.
type UpsertInput struct {
	Weekday   string
	Breakfast MealInput
	Lunch     MealInput
	Dinner    MealInput
}

type namedSlot struct {
	name  string
	input MealInput
}

func (i UpsertInput) slots() []namedSlot {
	return []namedSlot{
		{name: string(domain.MealBreakfast), input: i.Breakfast},
		{name: string(domain.MealLunch), input: i.Lunch},
		{name: string(domain.MealDinner), input: i.Dinner},
	}
}

// Validate checks all fields and collects all errors.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if !domain.IsValidWeekday(strings.ToLower(strings.TrimSpace(i.Weekday))) {
		errs = append(errs, domain.FieldError{Field: "weekday", Message: "must be a weekday name"})
	}

	for _, slot := range i.slots() {
		if len(slot.input.Foods) > maxFoods {
			errs = append(errs, domain.FieldError{Field: slot.name + ".foods", Message: fmt.Sprintf("max %d entries", maxFoods)})
		}
		for idx, f := range slot.input.Foods {
			f = strings.TrimSpace(f)
			if f == "" || len(f) > maxFoodLength {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.foods[%d]", slot.name, idx),
					Message: fmt.Sprintf("must be 1 to %d characters", maxFoodLength),
				})
			}
		}

		if len(slot.input.Inventory) > maxItems {
			errs = append(errs, domain.FieldError{Field: slot.name + ".inventory", Message: fmt.Sprintf("max %d entries", maxItems)})
		}
		seen := map[uuid.UUID]bool{}
		for idx, it := range slot.input.Inventory {
			field := fmt.Sprintf("%s.inventory[%d]", slot.name, idx)
			switch {
			case it.InventoryItemID == uuid.Nil:
				errs = append(errs, domain.FieldError{Field: field + ".inventoryItemId", Message: "required"})
			case seen[it.InventoryItemID]:
				errs = append(errs, domain.FieldError{Field: field + ".inventoryItemId", Message: "listed twice"})
			}
			seen[it.InventoryItemID] = true
			if !it.Quantity.IsPositive() {
				errs = append(errs, domain.FieldError{Field: field + ".quantity", Message: "must be positive"})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
