package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/planconfig"
	"github.com/giygas/protocols-api/sessions"
	"github.com/go-chi/chi/v5"
)

// SessionResponse is the JSON view of one configuration session
type SessionResponse struct {
	ID                     string                                 `json:"id"`
	CreatedAt              time.Time                              `json:"createdAt"`
	Config                 planconfig.Configuration               `json:"config"`
	States                 map[planconfig.Family]planconfig.State `json:"states"`
	PendingConsent         planconfig.Family                      `json:"pendingConsent,omitempty"`
	ActiveProtocols        []string                               `json:"activeProtocols"`
	RequiresMedicalConsent bool                                   `json:"requiresMedicalConsent"`
	HasValidConsent        bool                                   `json:"hasValidConsent"`
	MaxSelections          int                                    `json:"maxSelections"`
}

func newSessionResponse(s *sessions.Session) SessionResponse {
	cfg := s.Config.Snapshot()
	states := make(map[planconfig.Family]planconfig.State, 2)
	for _, f := range []planconfig.Family{planconfig.FamilyLongevity, planconfig.FamilyCleanse} {
		state, _ := s.Gate.State(f)
		states[f] = state
	}
	pending, _ := s.Gate.Pending()

	return SessionResponse{
		ID:                     s.ID,
		CreatedAt:              s.CreatedAt,
		Config:                 cfg,
		States:                 states,
		PendingConsent:         pending,
		ActiveProtocols:        cfg.ActiveProtocolLabels(),
		RequiresMedicalConsent: cfg.RequiresMedicalConsent(),
		HasValidConsent:        cfg.HasValidConsent(),
		MaxSelections:          s.Config.MaxSelections(),
	}
}

// CreateSession starts a configuration session with default settings
func (h *HTTPHandlerImpl) CreateSession(w http.ResponseWriter, r *http.Request) {
	s := h.sessions.Create()
	logging.Info("Session created", "session_id", s.ID)
	h.RespondWithJSON(w, http.StatusCreated, newSessionResponse(s))
}

// GetSession returns the current configuration of a session
func (h *HTTPHandlerImpl) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

// DeleteSession drops a session
func (h *HTTPHandlerImpl) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !h.sessions.Delete(id) {
		h.RespondWithError(w, http.StatusNotFound, "Session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readPatch reads a JSON object body and checks that it decodes onto probe.
// The raw bytes are returned so they can be applied inside the mutation.
func (h *HTTPHandlerImpl) readPatch(w http.ResponseWriter, r *http.Request, probe any) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Failed to read request body")
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(probe); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return nil, false
	}
	return body, true
}

// UpdateLongevity merges a partial longevity configuration. The enabled flag is
// owned by the consent endpoints and is ignored here.
func (h *HTTPHandlerImpl) UpdateLongevity(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	probe := s.Config.Snapshot().Longevity
	patch, ok := h.readPatch(w, r, &probe)
	if !ok {
		return
	}

	err := s.Config.UpdateLongevity(func(l *planconfig.LongevityConfig) {
		_ = json.Unmarshal(patch, l)
	})
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

// UpdateCleanse merges a partial cleanse configuration
func (h *HTTPHandlerImpl) UpdateCleanse(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	probe := s.Config.Snapshot().Cleanse
	patch, ok := h.readPatch(w, r, &probe)
	if !ok {
		return
	}

	err := s.Config.UpdateCleanse(func(c *planconfig.CleanseConfig) {
		_ = json.Unmarshal(patch, c)
	})
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

type ailmentSettingsRequest struct {
	IncludeInPlanning *bool                     `json:"includeInPlanning"`
	PriorityLevel     *planconfig.PriorityLevel `json:"priorityLevel"`
}

// UpdateAilmentSettings changes whether ailments take part in planning and their priority
func (h *HTTPHandlerImpl) UpdateAilmentSettings(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req ailmentSettingsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	current := s.Config.Snapshot().Ailments
	include, priority := current.IncludeInPlanning, current.PriorityLevel
	if req.IncludeInPlanning != nil {
		include = *req.IncludeInPlanning
	}
	if req.PriorityLevel != nil {
		priority = *req.PriorityLevel
	}

	if err := s.Config.UpdateAilmentSettings(include, priority); err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

// SelectAilment adds a catalog ailment to the session selection
func (h *HTTPHandlerImpl) SelectAilment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	id := chi.URLParam(r, "ailmentID")
	if err := h.validator.ValidateIdentifier(id); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	if _, ok := h.catalog.Lookup(id); !ok {
		h.RespondWithError(w, http.StatusNotFound, "Ailment not found")
		return
	}

	if err := s.Config.SelectAilment(id); err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

// DeselectAilment removes an ailment from the selection. Removing an ailment that
// is not selected is a no-op.
func (h *HTTPHandlerImpl) DeselectAilment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := s.Config.DeselectAilment(chi.URLParam(r, "ailmentID")); err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}

// UpdateProgress merges a partial progress record
func (h *HTTPHandlerImpl) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	probe := s.Config.Snapshot().Progress
	patch, ok := h.readPatch(w, r, &probe)
	if !ok {
		return
	}

	err := s.Config.UpdateProgress(func(p *planconfig.ProtocolProgress) {
		_ = json.Unmarshal(patch, p)
	})
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, newSessionResponse(s))
}
