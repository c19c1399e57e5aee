package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Create adds an item to the catalogue. Names are unique regardless of case.
func (s *Service) Create(ctx context.Context, input CreateItemInput) (*domain.InventoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item, err := s.items.Create(ctx, &domain.InventoryItem{
		ID:           uuid.New(),
		Name:         domain.CleanName(input.Name),
		Category:     input.Category,
		CurrentStock: input.CurrentStock,
		Unit:         input.Unit,
		MinimumStock: input.MinimumStock,
		CostPerUnit:  input.CostPerUnit,
		LastUpdated:  now,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item created",
		slog.String("item_id", item.ID.String()),
		slog.String("name", item.Name),
		slog.String("stock", item.CurrentStock.String()),
	)
	return item, nil
}

// Update changes the set fields of an item. Setting CurrentStock is how a
// restock is recorded.
func (s *Service) Update(ctx context.Context, input UpdateItemInput) (*domain.InventoryItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if input.Name != nil {
		item.Name = domain.CleanName(*input.Name)
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Unit != nil {
		item.Unit = *input.Unit
	}
	if input.CurrentStock != nil {
		item.CurrentStock = *input.CurrentStock
	}
	if input.MinimumStock != nil {
		item.MinimumStock = *input.MinimumStock
	}
	if input.CostPerUnit != nil {
		item.CostPerUnit = *input.CostPerUnit
	}
	item.LastUpdated = time.Now().UTC()

	updated, err := s.items.Update(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item updated",
		slog.String("item_id", updated.ID.String()),
		slog.String("stock", updated.CurrentStock.String()),
	)
	return updated, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error) {
	return s.items.GetByID(ctx, id)
}

// List returns a page of items ordered by name and the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.InventoryItem, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	return s.items.List(ctx, domain.ItemFilter{
		Category:     input.Category,
		LowStockOnly: input.LowStockOnly,
		Search:       domain.NormalizeName(input.Search),
		Limit:        limit,
		Offset:       input.Offset,
	})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.InfoContext(ctx, "inventory item deleted", slog.String("item_id", id.String()))
	return nil
}
