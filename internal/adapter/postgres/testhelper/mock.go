package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
)

// NewMockPool returns a pgxmock pool that fails the test if any expectation
// is left unmet.
func NewMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet pgxmock expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}

// DecimalArg matches a query argument equal to the given decimal, whatever
// its internal exponent.
func DecimalArg(s string) pgxmock.Argument {
	return decimalArg{want: decimal.RequireFromString(s)}
}

type decimalArg struct {
	want decimal.Decimal
}

func (a decimalArg) Match(v any) bool {
	d, ok := v.(decimal.Decimal)
	return ok && d.Equal(a.want)
}
