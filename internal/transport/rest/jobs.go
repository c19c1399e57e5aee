package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/internal/transport/middleware"
)

type jobRunner interface {
	Jobs() []scheduler.JobInfo
	Trigger(ctx context.Context, name string, at time.Time) error
}

// JobsHandler lets administrators inspect and fire background jobs.
type JobsHandler struct {
	jobs jobRunner
	loc  *time.Location
	now  func() time.Time
	log  *slog.Logger
}

// NewJobsHandler creates a JobsHandler.
func NewJobsHandler(jobs jobRunner, loc *time.Location, logger *slog.Logger) *JobsHandler {
	return &JobsHandler{jobs: jobs, loc: loc, now: time.Now, log: logger.With("handler", "jobs")}
}

// TriggerResponse reports a finished manual job run.
type TriggerResponse struct {
	Job      string `json:"job"`
	At       string `json:"at"`
	Duration string `json:"duration"`
}

// List returns registered jobs with their cron patterns.
// GET /api/admin/jobs
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, h.jobs.Jobs())
}

// Trigger runs a job now and waits for it. The optional date runs it as of
// that calendar day.
// POST /api/admin/jobs/{name}?date=2024-03-01
func (h *JobsHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	at, err := queryDate(r, "date", h.loc)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if at.IsZero() {
		at = h.now().In(h.loc)
	}

	name := r.PathValue("name")
	start := time.Now()
	if err := h.jobs.Trigger(context.WithoutCancel(r.Context()), name, at); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, TriggerResponse{
		Job:      name,
		At:       at.Format(time.RFC3339),
		Duration: time.Since(start).Round(time.Millisecond).String(),
	})
}
