package handlers

import (
	"net/http"

	"github.com/giygas/protocols-api/generation"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/planconfig"
	"github.com/go-chi/chi/v5"
)

// GateResponse reports the outcome of a consent gate operation
type GateResponse struct {
	Family  planconfig.Family `json:"family"`
	State   planconfig.State  `json:"state"`
	Session SessionResponse   `json:"session"`
}

func (h *HTTPHandlerImpl) family(w http.ResponseWriter, r *http.Request) (planconfig.Family, bool) {
	f, ok := planconfig.ParseFamily(chi.URLParam(r, "family"))
	if !ok {
		h.RespondWithError(w, http.StatusBadRequest, "Unknown protocol family")
		return "", false
	}
	return f, true
}

// EnableProtocol asks the consent gate to switch a family on. Without recorded
// consent the family waits in pending_consent and 202 is returned.
func (h *HTTPHandlerImpl) EnableProtocol(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	f, ok := h.family(w, r)
	if !ok {
		return
	}

	state, err := s.Gate.RequestEnable(f)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}

	code := http.StatusOK
	if state == planconfig.StatePendingConsent {
		code = http.StatusAccepted
	}
	h.RespondWithJSON(w, code, GateResponse{Family: f, State: state, Session: newSessionResponse(s)})
}

// DisableProtocol switches a family off or withdraws its pending request
func (h *HTTPHandlerImpl) DisableProtocol(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	f, ok := h.family(w, r)
	if !ok {
		return
	}

	if err := s.Gate.Disable(f); err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, GateResponse{Family: f, State: planconfig.StateDisabled, Session: newSessionResponse(s)})
}

// AcceptConsent records the consent form and enables the pending family
func (h *HTTPHandlerImpl) AcceptConsent(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var consent planconfig.MedicalConsent
	if err := decodeJSON(r, &consent, false); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	f, err := s.Gate.Accept(consent)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	logging.Info("Medical consent accepted", "session_id", s.ID, "family", f)
	h.RespondWithJSON(w, http.StatusOK, GateResponse{Family: f, State: planconfig.StateEnabled, Session: newSessionResponse(s)})
}

// DeclineConsent drops the pending request
func (h *HTTPHandlerImpl) DeclineConsent(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	f, err := s.Gate.Decline()
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, GateResponse{Family: f, State: planconfig.StateDisabled, Session: newSessionResponse(s)})
}

// GeneratePlan builds a generation request from the session configuration and
// calls the plan generator. The body carries optional BuildOptions.
func (h *HTTPHandlerImpl) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	f, ok := h.family(w, r)
	if !ok {
		return
	}

	var opts generation.BuildOptions
	if err := decodeJSON(r, &opts, true); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, text := range []string{opts.PlanName, opts.ClientName} {
		if text == "" {
			continue
		}
		if err := h.validator.ValidateInput(text); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if opts.DurationDays < 0 || opts.DailyCalorieTarget < 0 {
		h.RespondWithError(w, http.StatusBadRequest, "Duration and calorie target cannot be negative")
		return
	}

	result, err := h.generator.Generate(r.Context(), s.Config.Snapshot(), f, opts)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}

	code := http.StatusOK
	if result.PlanID != "" {
		code = http.StatusCreated
	}
	h.RespondWithJSON(w, code, result)
}

// GetPlan returns a stored plan
func (h *HTTPHandlerImpl) GetPlan(w http.ResponseWriter, r *http.Request) {
	if h.plans == nil {
		h.RespondWithError(w, http.StatusNotFound, "Plan storage is disabled")
		return
	}

	id := chi.URLParam(r, "planID")
	if err := h.validator.ValidateIdentifier(id); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.plans.GetPlan(r.Context(), id)
	if err != nil {
		h.respondWithDomainError(w, r, err)
		return
	}
	h.RespondWithJSON(w, http.StatusOK, plan)
}
