package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/consumption"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type usageService interface {
	RecordManual(ctx context.Context, input consumption.ManualInput) (*domain.InventoryUsage, error)
	RunMeal(ctx context.Context, meal domain.MealType, date time.Time) (*consumption.RunResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.InventoryUsage, error)
	List(ctx context.Context, input consumption.ListInput) ([]*domain.InventoryUsage, int, error)
}

// UsageHandler serves /api/inventory-usage and the manual consumption trigger.
type UsageHandler struct {
	usage usageService
	loc   *time.Location
	now   func() time.Time
	log   *slog.Logger
}

// NewUsageHandler creates a UsageHandler. Dates in requests are calendar
// days in loc.
func NewUsageHandler(usage usageService, loc *time.Location, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{usage: usage, loc: loc, now: time.Now, log: logger.With("handler", "usage")}
}

type manualItemRequest struct {
	InventoryItemID     uuid.UUID       `json:"inventoryItemId"`
	RecordedQuantity    decimal.Decimal `json:"recordedQuantity"`
	RecordedForStudents int             `json:"recordedForStudents"`
}

type manualUsageRequest struct {
	Date     string              `json:"date"`
	MealType string              `json:"mealType"`
	Items    []manualItemRequest `json:"items"`
	Notes    string              `json:"notes"`
}

// Record enters the usage of a meal by hand. Stock is debited scaled to the
// attendance of the meal.
// POST /api/inventory-usage
func (h *UsageHandler) Record(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req manualUsageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	input := consumption.ManualInput{
		Date:     req.Date,
		MealType: domain.MealType(req.MealType),
		Items:    make([]consumption.ManualItemInput, len(req.Items)),
		Notes:    req.Notes,
	}
	for i, it := range req.Items {
		input.Items[i] = consumption.ManualItemInput{
			InventoryItemID:     it.InventoryItemID,
			RecordedQuantity:    it.RecordedQuantity,
			RecordedForStudents: it.RecordedForStudents,
		}
	}

	usage, err := h.usage.RecordManual(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUsageResponse(usage))
}

// Get returns one usage record.
// GET /api/inventory-usage/{id}
func (h *UsageHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	usage, err := h.usage.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUsageResponse(usage))
}

// List returns usage history, newest first.
// GET /api/inventory-usage?from=2024-03-01&to=2024-03-07&mealType=lunch
func (h *UsageHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireKitchen(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var (
		input consumption.ListInput
		err   error
	)
	if input.From, err = queryDate(r, "from", h.loc); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if input.To, err = queryDate(r, "to", h.loc); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if m := r.URL.Query().Get("mealType"); m != "" {
		meal := domain.MealType(m)
		input.MealType = &meal
	}
	if input.Limit, input.Offset, err = page(r); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	usages, total, err := h.usage.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, Page[UsageResponse]{
		Items:  mapSlice(usages, toUsageResponse),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// RunMeal runs scheduled consumption of a meal immediately. The run is
// idempotent: a meal already recorded reports skip_already_recorded.
// POST /api/admin/consumption/{meal}?date=2024-03-01
func (h *UsageHandler) RunMeal(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	date, err := queryDate(r, "date", h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if date.IsZero() {
		date = h.now()
	}

	// The run outlives a disconnected client so a debit batch is never cut short.
	res, err := h.usage.RunMeal(context.WithoutCancel(r.Context()), domain.MealType(r.PathValue("meal")), date)
	if err != nil && res == nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	// A failed run still carries its report; the service has already
	// logged and alerted.
	status := http.StatusOK
	if err != nil {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, toRunResponse(res))
}
