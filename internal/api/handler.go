// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/ingest"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/store"
)

// maxUploadBytes bounds a single imported file.
const maxUploadBytes = 32 << 20

// Handler holds all dependencies needed by HTTP handlers.
type Handler struct {
	banks    *service.BankService
	practice *service.PracticeService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(banks *service.BankService, practice *service.PracticeService, logger *slog.Logger) *Handler {
	return &Handler{
		banks:    banks,
		practice: practice,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// validator is implemented by request bodies that check themselves.
type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. Returns false after writing a
// 400 response when the body is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs its Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

// errorStatus maps domain errors to HTTP statuses.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, ingest.ErrInvalidSchema),
		errors.Is(err, ingest.ErrParseFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, store.ErrNoData),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, practicesession.ErrEmptyKeyword),
		errors.Is(err, practicesession.ErrInvalidOption),
		errors.Is(err, practicesession.ErrInvalidType),
		errors.Is(err, practicesession.ErrUnknownMode):
		return http.StatusBadRequest
	case errors.Is(err, practicesession.ErrNoWorkingData),
		errors.Is(err, practicesession.ErrNotActive),
		errors.Is(err, practicesession.ErrLastQuestion),
		errors.Is(err, practicesession.ErrFirstQuestion),
		errors.Is(err, practicesession.ErrAnswerRevealed),
		errors.Is(err, practicesession.ErrNotEditable),
		errors.Is(err, practicesession.ErrNotSearchable),
		errors.Is(err, practicesession.ErrOptionLimit):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// handleError writes the response for err. Returns true if an error was
// handled (caller should return).
func (h *Handler) handleError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed", "error", err, "entity", entity)
		http.Error(w, "internal error", status)
		return true
	}
	http.Error(w, err.Error(), status)
	return true
}
