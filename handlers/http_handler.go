// Package handlers provides HTTP request handlers for the protocols API endpoints.
// This file implements the HTTPHandler interface with dependency injection.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/giygas/protocols-api/generation"
	"github.com/giygas/protocols-api/interfaces"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/planconfig"
	"github.com/giygas/protocols-api/sessions"
	"github.com/giygas/protocols-api/storage"
	"github.com/go-chi/chi/v5"
)

// maxIDsPerRequest bounds the ailment lists accepted by the stateless endpoints
const maxIDsPerRequest = 50

// HTTPHandlerImpl implements the interfaces.HTTPHandler interface
type HTTPHandlerImpl struct {
	catalog   interfaces.CatalogStore
	sessions  interfaces.SessionStore
	plans     interfaces.PlanStore
	generator interfaces.PlanService
	validator interfaces.DataValidator
	health    interfaces.HealthChecker
}

// NewHTTPHandler creates a new HTTP handler with injected dependencies.
// plans may be nil when persistence is disabled.
func NewHTTPHandler(catalog interfaces.CatalogStore, sessions interfaces.SessionStore,
	plans interfaces.PlanStore, generator interfaces.PlanService,
	validator interfaces.DataValidator, health interfaces.HealthChecker) interfaces.HTTPHandler {
	return &HTTPHandlerImpl{
		catalog:   catalog,
		sessions:  sessions,
		plans:     plans,
		generator: generator,
		validator: validator,
		health:    health,
	}
}

// RespondWithJSON writes a JSON response
func (h *HTTPHandlerImpl) RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// RespondWithError writes a JSON error response
func (h *HTTPHandlerImpl) RespondWithError(w http.ResponseWriter, code int, message string) {
	errorResponse := map[string]any{
		"error":   http.StatusText(code),
		"message": message,
		"code":    code,
	}
	h.RespondWithJSON(w, code, errorResponse)
}

// statusForError maps domain errors onto HTTP status codes
func statusForError(err error) int {
	var external *generation.ExternalServiceError
	switch {
	case errors.As(err, &external):
		return http.StatusBadGateway
	case errors.Is(err, storage.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, planconfig.ErrConsentPending), errors.Is(err, planconfig.ErrNoPendingConsent):
		return http.StatusConflict
	case errors.Is(err, planconfig.ErrMaxSelections),
		errors.Is(err, planconfig.ErrIncompleteConsent),
		errors.Is(err, generation.ErrFamilyDisabled),
		errors.Is(err, generation.ErrConsentRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, planconfig.ErrValidation):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// respondWithDomainError answers with the status matching err. Internal errors
// are logged and their text is not exposed.
func (h *HTTPHandlerImpl) respondWithDomainError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusForError(err)
	if code == http.StatusInternalServerError {
		logging.Error("Request failed", "path", r.URL.Path, "error", err)
		h.RespondWithError(w, code, "Internal server error")
		return
	}
	h.RespondWithError(w, code, err.Error())
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst untouched when
// allowEmpty is set.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return errors.New("request body is required")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// session resolves the session named in the URL or answers 404
func (h *HTTPHandlerImpl) session(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	id := chi.URLParam(r, "sessionID")
	s, ok := h.sessions.Get(id)
	if !ok {
		h.RespondWithError(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return s, true
}

// HealthCheck returns server health information
func (h *HTTPHandlerImpl) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status, data, httpStatus := h.health.HealthCheck(r.Context())

	response := map[string]any{
		"status": status,
		"data":   data,
	}
	h.RespondWithJSON(w, httpStatus, response)
}
