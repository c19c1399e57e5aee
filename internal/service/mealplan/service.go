// Package mealplan manages the weekly menu the consumption engine reads.
package mealplan

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

type planRepo interface {
	GetByWeekday(ctx context.Context, weekday string) (*domain.MealPlan, error)
	List(ctx context.Context) ([]*domain.MealPlan, error)
	Upsert(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
}

type Service struct {
	log   *slog.Logger
	plans planRepo
	items itemRepo
}

func NewService(log *slog.Logger, plans planRepo, items itemRepo) *Service {
	return &Service{
		log:   log.With("service", "mealplan"),
		plans: plans,
		items: items,
	}
}

// Upsert stores the plan of a weekday, replacing all three meals.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.MealPlan, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkItems(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	plan, err := s.plans.Upsert(ctx, &domain.MealPlan{
		ID:        uuid.New(),
		Weekday:   strings.ToLower(strings.TrimSpace(input.Weekday)),
		Breakfast: input.Breakfast.toDomain(),
		Lunch:     input.Lunch.toDomain(),
		Dinner:    input.Dinner.toDomain(),
		UpdatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("upsert meal plan: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan saved",
		slog.String("user_id", userID.String()),
		slog.String("weekday", plan.Weekday),
	)
	return plan, nil
}

// Get returns the plan of a weekday.
func (s *Service) Get(ctx context.Context, weekday string) (*domain.MealPlan, error) {
	weekday = strings.ToLower(strings.TrimSpace(weekday))
	if !domain.IsValidWeekday(weekday) {
		return nil, domain.NewValidationError("weekday", "must be a weekday name")
	}
	return s.plans.GetByWeekday(ctx, weekday)
}

// List returns every stored plan, Monday first.
func (s *Service) List(ctx context.Context) ([]*domain.MealPlan, error) {
	return s.plans.List(ctx)
}

// checkItems rejects plans referring to items that do not exist.
func (s *Service) checkItems(ctx context.Context, input UpsertInput) error {
	known := map[uuid.UUID]bool{}
	var errs []domain.FieldError

	for _, slot := range input.slots() {
		for idx, it := range slot.input.Inventory {
			exists, checked := known[it.InventoryItemID]
			if !checked {
				_, err := s.items.GetByID(ctx, it.InventoryItemID)
				switch {
				case err == nil:
					exists = true
				case errors.Is(err, domain.ErrNotFound):
					exists = false
				default:
					return fmt.Errorf("check item %s: %w", it.InventoryItemID, err)
				}
				known[it.InventoryItemID] = exists
			}
			if !exists {
				errs = append(errs, domain.FieldError{
					Field:   fmt.Sprintf("%s.inventory[%d].inventoryItemId", slot.name, idx),
					Message: "unknown inventory item",
				})
			}
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
