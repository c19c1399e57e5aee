package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllowedGroupSizes are the baseline group sizes a recorded quantity may refer to.
var AllowedGroupSizes = []int{1, 10}

// IsAllowedGroupSize reports whether n is an accepted baseline group size.
func IsAllowedGroupSize(n int) bool {
	for _, s := range AllowedGroupSizes {
		if s == n {
			return true
		}
	}
	return false
}

// UsageItem is one line of an InventoryUsage.
type UsageItem struct {
	InventoryItemID        uuid.UUID       `json:"inventoryItemId"`
	RecordedQuantity       decimal.Decimal `json:"recordedQuantity"`
	RecordedForStudents    int             `json:"recordedForStudents"`
	ActualQuantityDeducted decimal.Decimal `json:"actualQuantityDeducted"`
}

// InventoryUsage is the append-only audit of what a meal consumed.
type InventoryUsage struct {
	ID                  uuid.UUID
	UsageDate           time.Time
	MealType            MealType
	Items               []UsageItem
	AttendanceCount     int
	AttendanceSessionID *uuid.UUID
	RecordedBy          uuid.UUID
	Source              UsageSource
	Notes               string
	IdempotencyKey      string
	CreatedAt           time.Time
}

// UsageKey is the idempotency key of the usage of a meal on a day.
func UsageKey(date time.Time, meal MealType) string {
	return FormatDate(date) + ":" + string(meal)
}

// UsageFilter narrows a usage listing. Zero times are open bounds.
type UsageFilter struct {
	From     time.Time
	To       time.Time
	MealType *MealType
	Limit    int
	Offset   int
}
