package consumption

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

// RecordManual records usage entered by a kitchen user and debits the
// stock it implies. Every problem is collected before anything is debited:
// the entry is applied in full or not at all.
func (s *Service) RecordManual(ctx context.Context, input ManualInput) (*domain.InventoryUsage, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	day, err := domain.ParseDate(input.Date, s.opts.Location)
	if err != nil {
		return nil, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}
	key := domain.UsageKey(day, input.MealType)

	exists, err := s.usage.ExistsByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("check usage: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("usage %s: %w", key, domain.ErrConflict)
	}

	sessionType, sourceDate := domain.AttendanceSource(input.MealType, day)
	count, sessionID, err := s.attendance.AttendanceCount(ctx, sessionType, sourceDate)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.UsageErrors{Messages: []string{
			fmt.Sprintf("no %s attendance recorded for %s", sessionType, domain.FormatDate(sourceDate)),
		}}
	}
	if err != nil {
		return nil, fmt.Errorf("attendance count: %w", err)
	}

	lines, err := s.prepareManual(ctx, input.Items, count)
	if err != nil {
		return nil, err
	}

	usage := &domain.InventoryUsage{
		ID:                  uuid.New(),
		UsageDate:           day,
		MealType:            input.MealType,
		Items:               lines,
		AttendanceCount:     count,
		AttendanceSessionID: &sessionID,
		RecordedBy:          userID,
		Source:              domain.UsageManual,
		Notes:               strings.TrimSpace(input.Notes),
		IdempotencyKey:      key,
		CreatedAt:           time.Now().UTC(),
	}

	var created *domain.InventoryUsage
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		now := time.Now().UTC()
		for _, line := range lines {
			if line.ActualQuantityDeducted.IsZero() {
				continue
			}
			if _, err := s.items.Debit(txCtx, line.InventoryItemID, line.ActualQuantityDeducted, now); err != nil {
				return err
			}
		}

		var createErr error
		created, createErr = s.usage.Create(txCtx, usage)
		return createErr
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return nil, &domain.UsageErrors{Messages: []string{insufficient.Error()}}
		case errors.Is(err, domain.ErrAlreadyExists):
			return nil, fmt.Errorf("usage %s: %w", key, domain.ErrConflict)
		}
		return nil, fmt.Errorf("record usage: %w", err)
	}

	s.log.InfoContext(ctx, "manual usage recorded",
		slog.String("user_id", userID.String()),
		slog.String("key", key),
		slog.Int("attendance", count),
		slog.Int("items", len(lines)),
	)

	return created, nil
}

// prepareManual computes every line and checks that the stock covers the
// total required per item. All problems are returned together.
func (s *Service) prepareManual(ctx context.Context, in []ManualItemInput, attendance int) ([]domain.UsageItem, error) {
	var (
		messages []string
		lines    = make([]domain.UsageItem, 0, len(in))
		items    = make(map[uuid.UUID]*domain.InventoryItem, len(in))
		required = make(map[uuid.UUID]decimal.Decimal, len(in))
		order    []uuid.UUID
	)

	for _, it := range in {
		item, seen := items[it.InventoryItemID]
		if !seen {
			var err error
			item, err = s.items.GetByID(ctx, it.InventoryItemID)
			if errors.Is(err, domain.ErrNotFound) {
				items[it.InventoryItemID] = nil
				messages = append(messages, fmt.Sprintf("inventory item %s not found", it.InventoryItemID))
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("get item %s: %w", it.InventoryItemID, err)
			}
			items[it.InventoryItemID] = item
			order = append(order, item.ID)
		}
		if item == nil {
			continue
		}

		qty, err := QuantityToConsume(it.RecordedQuantity, it.RecordedForStudents, attendance)
		if err != nil {
			messages = append(messages, fmt.Sprintf("%s: %v", item.Name, err))
			continue
		}
		required[item.ID] = required[item.ID].Add(qty)
		lines = append(lines, domain.UsageItem{
			InventoryItemID:        item.ID,
			RecordedQuantity:       it.RecordedQuantity,
			RecordedForStudents:    it.RecordedForStudents,
			ActualQuantityDeducted: qty,
		})
	}

	for _, id := range order {
		item := items[id]
		if required[id].GreaterThan(item.CurrentStock) {
			messages = append(messages, (&domain.InsufficientStockError{
				ItemID:    item.ID,
				ItemName:  item.Name,
				Unit:      item.Unit,
				Available: item.CurrentStock,
				Required:  required[id],
			}).Error())
		}
	}

	if len(messages) > 0 {
		return nil, &domain.UsageErrors{Messages: messages}
	}
	return lines, nil
}
