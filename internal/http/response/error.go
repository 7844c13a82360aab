package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/semana-app/semana/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Details []ErrorField `json:"details,omitempty"`
}

// ErrorField describes a field-specific error.
type ErrorField struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// BadRequest sends a 400 Bad Request error.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, "INVALID_REQUEST", message, http.StatusBadRequest)
}

// ValidationError sends a 400 validation error with field details.
func ValidationError(w http.ResponseWriter, field, issue string) {
	write(w, http.StatusBadRequest, ErrorResponse{
		Error: ErrorDetail{
			Code:    "VALIDATION_ERROR",
			Message: "validation failed",
			Details: []ErrorField{
				{Field: field, Issue: issue},
			},
		},
	})
}

// NotFound sends a 404 Not Found error.
func NotFound(w http.ResponseWriter, resource string) {
	Error(w, "NOT_FOUND", resource+" not found", http.StatusNotFound)
}

// Unauthorized sends a 401 Unauthorized error.
func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, "UNAUTHORIZED", message, http.StatusUnauthorized)
}

// Conflict sends a 409 Conflict error.
func Conflict(w http.ResponseWriter, message string) {
	Error(w, "CONFLICT", message, http.StatusConflict)
}

// InternalError sends a 500 Internal Server Error.
// The actual error is logged with request context; the client gets a
// generic message to avoid leaking internals.
func InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		slog.ErrorContext(r.Context(), "internal server error", "error", err)
	}

	Error(w, "INTERNAL_ERROR", "an internal error occurred", http.StatusInternalServerError)
}

// Error sends a generic error response.
func Error(w http.ResponseWriter, code, message string, statusCode int) {
	write(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// write renders an error body. ErrorResponse holds only strings, so the
// marshal cannot fail; the json.Marshal error is ignored on purpose.
func write(w http.ResponseWriter, statusCode int, resp ErrorResponse) {
	body, _ := json.Marshal(resp)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(body); err != nil {
		slog.Error("failed to write error response", "error", err)
	}
}

// FromDomainError maps domain errors to HTTP responses.
func FromDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Validation errors (400)
	case errors.Is(err, domain.ErrTitleRequired):
		ValidationError(w, "title", "required field missing")
	case errors.Is(err, domain.ErrTitleTooLong):
		ValidationError(w, "title", "must be 255 characters or less")
	case errors.Is(err, domain.ErrInvalidDate):
		ValidationError(w, "date", "must be a YYYY-MM-DD date")
	case errors.Is(err, domain.ErrInvalidWeekday):
		ValidationError(w, "day", "must be a working weekday, Monday through Friday")
	case errors.Is(err, domain.ErrInvalidColumn):
		ValidationError(w, "column", "must be between 0 and 4")
	case errors.Is(err, domain.ErrInvalidSlot):
		ValidationError(w, "slot", "must be a zero-padded HH:MM time")
	case errors.Is(err, domain.ErrInvalidTaskStatus):
		ValidationError(w, "status", "invalid task status")
	case errors.Is(err, domain.ErrInvalidTaskOrigin):
		ValidationError(w, "origin", "invalid task origin")
	case errors.Is(err, domain.ErrInvalidPriority):
		ValidationError(w, "priority", "must be between 0 and 3")
	case errors.Is(err, domain.ErrInvalidRecurrence):
		ValidationError(w, "rule", "invalid recurrence rule")

	// Not found errors (404)
	case errors.Is(err, domain.ErrTaskNotFound):
		NotFound(w, "task")

	// Unknown errors (500)
	default:
		InternalError(w, r, err)
	}
}
