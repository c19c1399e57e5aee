package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/student"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type studentService interface {
	Create(ctx context.Context, input student.CreateInput) (*domain.Student, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*domain.Student, error)
}

// StudentHandler serves /api/students.
type StudentHandler struct {
	students studentService
	log      *slog.Logger
}

// NewStudentHandler creates a StudentHandler.
func NewStudentHandler(students studentService, logger *slog.Logger) *StudentHandler {
	return &StudentHandler{students: students, log: logger.With("handler", "student")}
}

type createStudentRequest struct {
	Name       string `json:"name"`
	RoomNumber string `json:"roomNumber"`
}

// Create registers a resident.
// POST /api/students
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleAdmin, domain.UserRoleWarden); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req createStudentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	st, err := h.students.Create(r.Context(), student.CreateInput{Name: req.Name, RoomNumber: req.RoomNumber})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toStudentResponse(st))
}

// List returns residents by room.
// GET /api/students?active=true
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	activeOnly, err := queryBool(r, "active")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	limit, offset, err := page(r)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	students, err := h.students.List(r.Context(), activeOnly, limit, offset)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(students, toStudentResponse))
}
