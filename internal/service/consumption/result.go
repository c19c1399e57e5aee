package consumption

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Outcome is how a scheduled run ended.
type Outcome string

const (
	OutcomeDone                Outcome = "done"
	OutcomePartialFailure      Outcome = "partial_failure"
	OutcomeSkipAlreadyRecorded Outcome = "skip_already_recorded"
	OutcomeSkipNoPlan          Outcome = "skip_no_plan"
	OutcomeSkipEmptyMeal       Outcome = "skip_empty_meal"
	OutcomeSkipNoAttendance    Outcome = "skip_no_attendance"
	OutcomeFailed              Outcome = "failed"
)

// Skipped reports whether the run ended before touching any stock.
func (o Outcome) Skipped() bool {
	switch o {
	case OutcomeSkipAlreadyRecorded, OutcomeSkipNoPlan, OutcomeSkipEmptyMeal, OutcomeSkipNoAttendance:
		return true
	}
	return false
}

// ItemSuccess is one item debited by a run.
type ItemSuccess struct {
	ItemID       uuid.UUID
	ItemName     string
	Unit         domain.Unit
	BaseQuantity decimal.Decimal
	Deducted     decimal.Decimal
	Remaining    decimal.Decimal
}

// RunResult is the report of one scheduled run.
type RunResult struct {
	MealType            domain.MealType
	Date                time.Time
	Outcome             Outcome
	AttendanceCount     int
	AttendanceSessionID *uuid.UUID
	Successes           []ItemSuccess
	Errors              []string
	Usage               *domain.InventoryUsage
}
