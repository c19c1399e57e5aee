package inventory

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const (
	DefaultLimit  = 50
	MaxLimit      = 200
	MaxNameLength = 100
)

type itemRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, f domain.ItemFilter) ([]*domain.InventoryItem, int, error)
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Update(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service manages the inventory catalogue. Consumption never goes through
// it: stock is debited by the consumption service on the ledger directly.
type Service struct {
	log   *slog.Logger
	items itemRepo
}

// NewService creates a new inventory service.
func NewService(log *slog.Logger, items itemRepo) *Service {
	return &Service{
		log:   log.With("service", "inventory"),
		items: items,
	}
}
