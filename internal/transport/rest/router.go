package rest

import (
	"net/http"

	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler of the API.
type Handlers struct {
	Health        *HealthHandler
	Inventory     *InventoryHandler
	MealPlans     *MealPlanHandler
	Attendance    *AttendanceHandler
	Students      *StudentHandler
	Usage         *UsageHandler
	Notifications *NotificationHandler
	Jobs          *JobsHandler
}

// Routes builds the root handler. Probes are served bare; everything under
// /api/ goes through apiMW.
func (h Handlers) Routes(apiMW middleware.Middleware) http.Handler {
	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)

	api := http.NewServeMux()

	api.HandleFunc("GET /api/inventory", h.Inventory.List)
	api.HandleFunc("POST /api/inventory", h.Inventory.Create)
	api.HandleFunc("GET /api/inventory/{id}", h.Inventory.Get)
	api.HandleFunc("PUT /api/inventory/{id}", h.Inventory.Update)
	api.HandleFunc("DELETE /api/inventory/{id}", h.Inventory.Delete)

	api.HandleFunc("GET /api/meal-plans", h.MealPlans.List)
	api.HandleFunc("GET /api/meal-plans/{weekday}", h.MealPlans.Get)
	api.HandleFunc("PUT /api/meal-plans/{weekday}", h.MealPlans.Upsert)

	api.HandleFunc("GET /api/attendance", h.Attendance.List)
	api.HandleFunc("POST /api/attendance", h.Attendance.Create)
	api.HandleFunc("GET /api/attendance/lookup", h.Attendance.Lookup)
	api.HandleFunc("GET /api/attendance/{id}", h.Attendance.Get)
	api.HandleFunc("PUT /api/attendance/{id}/records", h.Attendance.UpdateRecords)

	api.HandleFunc("GET /api/students", h.Students.List)
	api.HandleFunc("POST /api/students", h.Students.Create)

	api.HandleFunc("GET /api/inventory-usage", h.Usage.List)
	api.HandleFunc("POST /api/inventory-usage", h.Usage.Record)
	api.HandleFunc("GET /api/inventory-usage/{id}", h.Usage.Get)

	api.HandleFunc("GET /api/notifications", h.Notifications.List)
	api.HandleFunc("POST /api/notifications/{id}/read", h.Notifications.MarkRead)

	api.HandleFunc("GET /api/admin/jobs", h.Jobs.List)
	api.HandleFunc("POST /api/admin/jobs/{name}", h.Jobs.Trigger)
	api.HandleFunc("POST /api/admin/consumption/{meal}", h.Usage.RunMeal)

	root.Handle("/api/", apiMW(api))
	return root
}
