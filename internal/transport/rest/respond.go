// Package rest exposes the kitchen services over JSON HTTP.
package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/internal/scheduler"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []fieldError `json:"fields,omitempty"`
	// Messages lists every problem of a rejected usage entry.
	Messages []string `json:"messages,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

// writeServiceError maps a service error onto a status code. Unexpected
// errors are logged and hidden behind a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		usageErrs *domain.UsageErrors
		valErr    *domain.ValidationError
	)

	switch {
	case errors.As(err, &usageErrs):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
			Error:    "usage rejected",
			Code:     "USAGE_REJECTED",
			Messages: usageErrs.Messages,
		})

	case errors.As(err, &valErr):
		resp := ErrorResponse{Error: "validation failed", Code: "VALIDATION"}
		for _, fe := range valErr.Errors {
			resp.Fields = append(resp.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, resp)

	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "VALIDATION", err.Error())

	case errors.Is(err, domain.ErrNotFound), errors.Is(err, scheduler.ErrUnknownJob):
		writeError(w, http.StatusNotFound, "NOT_FOUND", "not found")

	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict),
		errors.Is(err, scheduler.ErrJobRunning):
		writeError(w, http.StatusConflict, "CONFLICT", conflictMessage(err))

	case errors.Is(err, domain.ErrInsufficientStock):
		writeError(w, http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", err.Error())

	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "authentication required")

	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "FORBIDDEN", "insufficient role")

	default:
		log.ErrorContext(r.Context(), "unexpected handler error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
	}
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, scheduler.ErrJobRunning):
		return "job is already running"
	case errors.Is(err, domain.ErrAlreadyExists):
		return "already exists"
	}
	return "usage for this meal and date is already recorded"
}
