package inventory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// CreateItemInput holds the parameters for creating an inventory item.
type CreateItemInput struct {
	Name         string
	Category     domain.ItemCategory
	Unit         domain.Unit
	CurrentStock decimal.Decimal
	MinimumStock decimal.Decimal
	CostPerUnit  decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i CreateItemInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if !i.Unit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "invalid unit"})
	}
	errs = append(errs, validateAmount("currentStock", &i.CurrentStock)...)
	errs = append(errs, validateAmount("minimumStock", &i.MinimumStock)...)
	errs = append(errs, validateAmount("costPerUnit", &i.CostPerUnit)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateItemInput changes the fields that are set.
type UpdateItemInput struct {
	ID           uuid.UUID
	Name         *string
	Category     *domain.ItemCategory
	Unit         *domain.Unit
	CurrentStock *decimal.Decimal
	MinimumStock *decimal.Decimal
	CostPerUnit  *decimal.Decimal
}

// Validate checks all fields and collects all errors.
func (i UpdateItemInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
	}
	if i.Unit != nil && !i.Unit.IsValid() {
		errs = append(errs, domain.FieldError{Field: "unit", Message: "invalid unit"})
	}
	errs = append(errs, validateAmount("currentStock", i.CurrentStock)...)
	errs = append(errs, validateAmount("minimumStock", i.MinimumStock)...)
	errs = append(errs, validateAmount("costPerUnit", i.CostPerUnit)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput narrows an item listing.
type ListInput struct {
	Category     *domain.ItemCategory
	LowStockOnly bool
	Search       string
	Limit        int
	Offset       int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Category != nil && !i.Category.IsValid() {
		errs = append(errs, domain.FieldError{Field: "category", Message: "invalid category"})
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

func validateName(name string) []domain.FieldError {
	clean := domain.CleanName(name)
	if clean == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len([]rune(clean)) > MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: fmt.Sprintf("max %d characters", MaxNameLength)}}
	}
	return nil
}

func validateAmount(field string, v *decimal.Decimal) []domain.FieldError {
	if v != nil && v.IsNegative() {
		return []domain.FieldError{{Field: field, Message: "must be non-negative"}}
	}
	return nil
}
