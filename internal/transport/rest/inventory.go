package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/inventory"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type inventoryService interface {
	Create(ctx context.Context, input inventory.CreateItemInput) (*domain.InventoryItem, error)
	Update(ctx context.Context, input inventory.UpdateItemInput) (*domain.InventoryItem, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InventoryItem, error)
	List(ctx context.Context, input inventory.ListInput) ([]*domain.InventoryItem, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InventoryHandler serves /api/inventory.
type InventoryHandler struct {
	items inventoryService
	log   *slog.Logger
}

// NewInventoryHandler creates an InventoryHandler.
func NewInventoryHandler(items inventoryService, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{items: items, log: logger.With("handler", "inventory")}
}

type createItemRequest struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"currentStock"`
	MinimumStock decimal.Decimal `json:"minimumStock"`
	CostPerUnit  decimal.Decimal `json:"costPerUnit"`
}

type updateItemRequest struct {
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Unit         *string          `json:"unit"`
	CurrentStock *decimal.Decimal `json:"currentStock"`
	MinimumStock *decimal.Decimal `json:"minimumStock"`
	CostPerUnit  *decimal.Decimal `json:"costPerUnit"`
}

// Create adds an item.
// POST /api/inventory
func (h *InventoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req createItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.items.Create(r.Context(), inventory.CreateItemInput{
		Name:         req.Name,
		Category:     domain.ItemCategory(req.Category),
		Unit:         domain.Unit(req.Unit),
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		CostPerUnit:  req.CostPerUnit,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// List returns items.
// GET /api/inventory?category=dairy&lowStock=true&search=milk&limit=50&offset=0
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := inventory.ListInput{Search: r.URL.Query().Get("search")}
	if c := r.URL.Query().Get("category"); c != "" {
		cat := domain.ItemCategory(c)
		input.Category = &cat
	}

	var err error
	if input.LowStockOnly, err = queryBool(r, "lowStock"); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if input.Limit, input.Offset, err = page(r); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	items, total, err := h.items.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, Page[ItemResponse]{
		Items:  mapSlice(items, toItemResponse),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// Get returns one item.
// GET /api/inventory/{id}
func (h *InventoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	item, err := h.items.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Update changes the fields present in the body.
// PUT /api/inventory/{id}
func (h *InventoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := inventory.UpdateItemInput{
		ID:           id,
		Name:         req.Name,
		CurrentStock: req.CurrentStock,
		MinimumStock: req.MinimumStock,
		CostPerUnit:  req.CostPerUnit,
	}
	if req.Category != nil {
		c := domain.ItemCategory(*req.Category)
		input.Category = &c
	}
	if req.Unit != nil {
		u := domain.Unit(*req.Unit)
		input.Unit = &u
	}

	item, err := h.items.Update(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// Delete removes an item.
// DELETE /api/inventory/{id}
func (h *InventoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	if err := h.items.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
