package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/service/attendance"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type attendanceService interface {
	CreateSession(ctx context.Context, input attendance.CreateSessionInput) (*domain.AttendanceSession, error)
	UpdateRecords(ctx context.Context, input attendance.UpdateRecordsInput) (*domain.AttendanceSession, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.AttendanceSession, error)
	GetByDate(ctx context.Context, sessionType domain.SessionType, date time.Time) (*domain.AttendanceSession, error)
	List(ctx context.Context, input attendance.ListInput) ([]*domain.AttendanceSession, error)
}

// AttendanceHandler serves /api/attendance.
type AttendanceHandler struct {
	sessions attendanceService
	loc      *time.Location
	log      *slog.Logger
}

// NewAttendanceHandler creates an AttendanceHandler. Dates in requests are
// calendar days in loc.
func NewAttendanceHandler(sessions attendanceService, loc *time.Location, logger *slog.Logger) *AttendanceHandler {
	return &AttendanceHandler{sessions: sessions, loc: loc, log: logger.With("handler", "attendance")}
}

type recordRequest struct {
	StudentID uuid.UUID `json:"studentId"`
	Status    string    `json:"status"`
}

func toRecordInputs(in []recordRequest) []attendance.RecordInput {
	out := make([]attendance.RecordInput, len(in))
	for i, r := range in {
		out[i] = attendance.RecordInput{StudentID: r.StudentID, Status: domain.AttendanceStatus(r.Status)}
	}
	return out
}

type createSessionRequest struct {
	SessionType string          `json:"sessionType"`
	Date        string          `json:"date"`
	Records     []recordRequest `json:"records"`
}

type updateRecordsRequest struct {
	Records []recordRequest `json:"records"`
}

// Create records a roll call.
// POST /api/attendance
func (h *AttendanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req createSessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	date, err := domain.ParseDate(req.Date, h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, domain.NewValidationError("date", "must be YYYY-MM-DD"))
		return
	}

	session, err := h.sessions.CreateSession(r.Context(), attendance.CreateSessionInput{
		SessionType: domain.SessionType(req.SessionType),
		Date:        date,
		Records:     toRecordInputs(req.Records),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toAttendanceResponse(session))
}

// UpdateRecords replaces the marks of a session.
// PUT /api/attendance/{id}/records
func (h *AttendanceHandler) UpdateRecords(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var req updateRecordsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	session, err := h.sessions.UpdateRecords(r.Context(), attendance.UpdateRecordsInput{
		SessionID: id,
		Records:   toRecordInputs(req.Records),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(session))
}

// Get returns one session.
// GET /api/attendance/{id}
func (h *AttendanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(session))
}

// Lookup returns the session of a type on a day.
// GET /api/attendance/lookup?type=evening&date=2024-03-01
func (h *AttendanceHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	date, err := queryDate(r, "date", h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if date.IsZero() {
		writeServiceError(w, r, h.log, domain.NewValidationError("date", "required"))
		return
	}

	session, err := h.sessions.GetByDate(r.Context(), domain.SessionType(r.URL.Query().Get("type")), date)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttendanceResponse(session))
}

// List returns sessions in a date range, newest first.
// GET /api/attendance?from=2024-03-01&to=2024-03-31&limit=31
func (h *AttendanceHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireStaff(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	var (
		input attendance.ListInput
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
	if input.Limit, input.Offset, err = page(r); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	sessions, err := h.sessions.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(sessions, toAttendanceResponse))
}
