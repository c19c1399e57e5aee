package consumption

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

var errAlreadyRecorded = errors.New("usage already recorded")

// RunMeal deducts the stock consumed by meal on the calendar day of date.
//
// Breakfast and lunch are scaled to the evening attendance of the previous
// day, dinner to the evening attendance of the same day. A missing plan,
// an empty meal, missing or zero attendance and an already recorded usage
// end the run without writes. Item failures do not stop the run: each
// missing item and each shortfall is collected and sent to administrators
// in one alert, while the remaining items are debited and recorded.
func (s *Service) RunMeal(ctx context.Context, meal domain.MealType, date time.Time) (*RunResult, error) {
	if !meal.IsValid() {
		return nil, domain.NewValidationError("mealType", "must be breakfast, lunch or dinner")
	}

	// A started run always finishes; callers cannot cancel it or time it out.
	ctx = context.WithoutCancel(ctx)

	day := domain.DayStart(date, s.opts.Location)
	res := &RunResult{MealType: meal, Date: day}
	key := domain.UsageKey(day, meal)
	log := s.log.With(slog.String("meal", string(meal)), slog.String("date", domain.FormatDate(day)))

	err := s.runMeal(ctx, log, res, key)
	if err != nil {
		res.Outcome = OutcomeFailed
		log.ErrorContext(ctx, "consumption run failed", slog.String("error", err.Error()))
		s.alert(ctx, log, fmt.Sprintf("Inventory consumption failed: %s %s", meal, domain.FormatDate(day)), err.Error())
		return res, fmt.Errorf("consumption.RunMeal %s: %w", key, err)
	}

	if len(res.Errors) > 0 {
		s.alert(ctx, log, fmt.Sprintf("Inventory consumption issues: %s %s", meal, domain.FormatDate(day)),
			strings.Join(res.Errors, "; "))
	}

	log.InfoContext(ctx, "consumption run finished",
		slog.String("outcome", string(res.Outcome)),
		slog.Int("attendance", res.AttendanceCount),
		slog.Int("debited", len(res.Successes)),
		slog.Int("errors", len(res.Errors)),
	)
	return res, nil
}

func (s *Service) runMeal(ctx context.Context, log *slog.Logger, res *RunResult, key string) error {
	exists, err := s.usage.ExistsByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("check usage: %w", err)
	}
	if exists {
		res.Outcome = OutcomeSkipAlreadyRecorded
		return nil
	}

	plan, err := s.plans.GetByWeekday(ctx, domain.WeekdayName(res.Date))
	if errors.Is(err, domain.ErrNotFound) {
		log.InfoContext(ctx, "no meal plan for weekday", slog.String("weekday", domain.WeekdayName(res.Date)))
		res.Outcome = OutcomeSkipNoPlan
		return nil
	}
	if err != nil {
		return fmt.Errorf("get meal plan: %w", err)
	}

	planned := plan.ItemsFor(res.MealType)
	if len(planned) == 0 {
		res.Outcome = OutcomeSkipEmptyMeal
		return nil
	}

	sessionType, sourceDate := domain.AttendanceSource(res.MealType, res.Date)
	count, sessionID, err := s.attendance.AttendanceCount(ctx, sessionType, sourceDate)
	if errors.Is(err, domain.ErrNotFound) {
		log.InfoContext(ctx, "attendance not recorded",
			slog.String("session", string(sessionType)),
			slog.String("source_date", domain.FormatDate(sourceDate)))
		res.Outcome = OutcomeSkipNoAttendance
		return nil
	}
	if err != nil {
		return fmt.Errorf("attendance count: %w", err)
	}
	if count == 0 {
		log.InfoContext(ctx, "zero attendance", slog.String("source_date", domain.FormatDate(sourceDate)))
		res.Outcome = OutcomeSkipNoAttendance
		return nil
	}
	res.AttendanceCount = count
	res.AttendanceSessionID = &sessionID

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		res.Successes, res.Errors = nil, nil
		lines, err := s.debitPlanned(txCtx, res, planned)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}

		created, err := s.usage.Create(txCtx, &domain.InventoryUsage{
			ID:                  uuid.New(),
			UsageDate:           res.Date,
			MealType:            res.MealType,
			Items:               lines,
			AttendanceCount:     count,
			AttendanceSessionID: res.AttendanceSessionID,
			RecordedBy:          s.opts.SystemActor,
			Source:              domain.UsageScheduled,
			Notes:               fmt.Sprintf("Automated %s consumption", res.MealType),
			IdempotencyKey:      key,
			CreatedAt:           time.Now().UTC(),
		})
		if errors.Is(err, domain.ErrAlreadyExists) {
			return errAlreadyRecorded
		}
		if err != nil {
			return fmt.Errorf("create usage: %w", err)
		}
		res.Usage = created
		return nil
	})
	if errors.Is(err, errAlreadyRecorded) {
		res.Outcome = OutcomeSkipAlreadyRecorded
		res.Successes, res.Errors, res.Usage = nil, nil, nil
		return nil
	}
	if err != nil {
		res.Successes, res.Usage = nil, nil
		return err
	}

	res.Outcome = OutcomeDone
	if len(res.Errors) > 0 {
		res.Outcome = OutcomePartialFailure
	}
	return nil
}

// debitPlanned debits every planned item in turn. Missing items and
// shortfalls are collected on res; any other error aborts.
func (s *Service) debitPlanned(ctx context.Context, res *RunResult, planned []domain.PlanItem) ([]domain.UsageItem, error) {
	var lines []domain.UsageItem
	now := time.Now().UTC()

	for _, p := range planned {
		item, err := s.items.GetByID(ctx, p.InventoryItemID)
		if errors.Is(err, domain.ErrNotFound) {
			res.Errors = append(res.Errors, fmt.Sprintf("inventory item %s not found", p.InventoryItemID))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get item %s: %w", p.InventoryItemID, err)
		}

		qty, err := QuantityToConsume(p.Quantity, s.opts.GroupSize, res.AttendanceCount)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", item.Name, err))
			continue
		}

		remaining, err := s.items.Debit(ctx, item.ID, qty, now)
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			res.Errors = append(res.Errors, fmt.Sprintf("%s (attendance %d)", insufficient.Error(), res.AttendanceCount))
			continue
		case errors.Is(err, domain.ErrNotFound):
			res.Errors = append(res.Errors, fmt.Sprintf("inventory item %s not found", item.ID))
			continue
		case err != nil:
			return nil, fmt.Errorf("debit %s: %w", item.Name, err)
		}

		res.Successes = append(res.Successes, ItemSuccess{
			ItemID:       item.ID,
			ItemName:     item.Name,
			Unit:         item.Unit,
			BaseQuantity: p.Quantity,
			Deducted:     qty,
			Remaining:    remaining,
		})
		lines = append(lines, domain.UsageItem{
			InventoryItemID:        item.ID,
			RecordedQuantity:       p.Quantity,
			RecordedForStudents:    s.opts.GroupSize,
			ActualQuantityDeducted: qty,
		})
	}
	return lines, nil
}

func (s *Service) alert(ctx context.Context, log *slog.Logger, title, message string) {
	sent, err := s.alerts.Alert(ctx, AlertRoles, title, message, domain.NotificationAlert)
	if err != nil {
		log.ErrorContext(ctx, "send consumption alert",
			slog.Int("recipients", sent),
			slog.String("error", err.Error()),
		)
		return
	}
	log.WarnContext(ctx, "consumption alert sent", slog.String("title", title), slog.Int("recipients", sent))
}
