package consumption

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const maxNotesLength = 1000

// ManualItemInput is one line of a manual usage entry.
type ManualItemInput struct {
	InventoryItemID     uuid.UUID
	RecordedQuantity    decimal.Decimal
	RecordedForStudents int
}

// ManualInput holds a manual usage entry made by kitchen staff.
type ManualInput struct {
	Date     string
	MealType domain.MealType
	Items    []ManualItemInput
	Notes    string
}

// Validate checks all fields and collects all errors.
func (i ManualInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Date) == "" {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	} else if _, err := domain.ParseDate(i.Date, time.UTC); err != nil {
		errs = append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mealType", Message: "must be breakfast, lunch or dinner"})
	}
	if len(i.Items) == 0 {
		errs = append(errs, domain.FieldError{Field: "items", Message: "at least one item is required"})
	}
	for idx, it := range i.Items {
		field := fmt.Sprintf("items[%d]", idx)
		if it.InventoryItemID == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: field + ".inventoryItemId", Message: "required"})
		}
		if it.RecordedQuantity.IsNegative() {
			errs = append(errs, domain.FieldError{Field: field + ".recordedQuantity", Message: "must be non-negative"})
		}
		if !domain.IsAllowedGroupSize(it.RecordedForStudents) {
			errs = append(errs, domain.FieldError{Field: field + ".recordedForStudents", Message: "must be 1 or 10"})
		}
	}
	if len(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: fmt.Sprintf("max %d characters", maxNotesLength)})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows a usage listing. Zero dates are open bounds.
type ListInput struct {
	From     time.Time
	To       time.Time
	MealType *domain.MealType
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.From.IsZero() && !i.To.IsZero() && i.To.Before(i.From) {
		errs = append(errs, domain.FieldError{Field: "to", Message: "must not be before from"})
	}
	if i.MealType != nil && !i.MealType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mealType", Message: "must be breakfast, lunch or dinner"})
	}
	if i.Limit < 0 || i.Limit > MaxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
