package consumption

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

// Get returns a usage record by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error) {
	return s.usage.GetByID(ctx, id)
}

// List returns usage records, newest day first, and the total matching count.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.InventoryUsage, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultLimit
	}

	f := domain.UsageFilter{
		MealType: input.MealType,
		Limit:    limit,
		Offset:   input.Offset,
	}
	if !input.From.IsZero() {
		f.From = domain.DayStart(input.From, s.opts.Location)
	}
	if !input.To.IsZero() {
		f.To = domain.DayStart(input.To, s.opts.Location)
	}
	return s.usage.List(ctx, f)
}
