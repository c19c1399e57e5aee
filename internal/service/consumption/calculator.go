package consumption

import (
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// QuantityToConsume scales base, written for groupSize people, to attendance
// people. No rounding is applied: fractional kilograms and litres are legal.
func QuantityToConsume(base decimal.Decimal, groupSize, attendance int) (decimal.Decimal, error) {
	if groupSize <= 0 {
		return decimal.Zero, domain.NewValidationError("groupSize", "must be positive")
	}
	if attendance < 0 {
		return decimal.Zero, domain.NewValidationError("attendance", "must be non-negative")
	}
	if base.IsNegative() {
		return decimal.Zero, domain.NewValidationError("quantity", "must be non-negative")
	}
	return base.Mul(decimal.NewFromInt(int64(attendance))).Div(decimal.NewFromInt(int64(groupSize))), nil
}
