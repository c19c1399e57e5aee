package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/mealplan"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type mealPlanService interface {
	Upsert(ctx context.Context, input mealplan.UpsertInput) (*domain.MealPlan, error)
	Get(ctx context.Context, weekday string) (*domain.MealPlan, error)
	List(ctx context.Context) ([]*domain.MealPlan, error)
}

// MealPlanHandler serves /api/meal-plans.
type MealPlanHandler struct {
	plans mealPlanService
	log   *slog.Logger
}

// NewMealPlanHandler creates a MealPlanHandler.
func NewMealPlanHandler(plans mealPlanService, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{plans: plans, log: logger.With("handler", "mealplan")}
}

type planItemRequest struct {
	InventoryItemID uuid.UUID       `json:"inventoryItemId"`
	Quantity        decimal.Decimal `json:"quantity"`
}

type mealRequest struct {
	Foods     []string          `json:"foods"`
	Inventory []planItemRequest `json:"inventory"`
}

func (m mealRequest) toInput() mealplan.MealInput {
	in := mealplan.MealInput{
		Foods:     m.Foods,
		Inventory: make([]mealplan.PlanItemInput, len(m.Inventory)),
	}
	for i, it := range m.Inventory {
		in.Inventory[i] = mealplan.PlanItemInput{InventoryItemID: it.InventoryItemID, Quantity: it.Quantity}
	}
	return in
}

type upsertPlanRequest struct {
	Breakfast mealRequest `json:"breakfast"`
	Lunch     mealRequest `json:"lunch"`
	Dinner    mealRequest `json:"dinner"`
}

// List returns every configured weekday.
// GET /api/meal-plans
func (h *MealPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	plans, err := h.plans.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(plans, toMealPlanResponse))
}

// Get returns the plan of a weekday.
// GET /api/meal-plans/{weekday}
func (h *MealPlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	plan, err := h.plans.Get(r.Context(), r.PathValue("weekday"))
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealPlanResponse(plan))
}

// Upsert replaces the plan of a weekday.
// PUT /api/meal-plans/{weekday}
func (h *MealPlanHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req upsertPlanRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	plan, err := h.plans.Upsert(r.Context(), mealplan.UpsertInput{
		Weekday:   r.PathValue("weekday"),
		Breakfast: req.Breakfast.toInput(),
		Lunch:     req.Lunch.toInput(),
		Dinner:    req.Dinner.toInput(),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toMealPlanResponse(plan))
}
