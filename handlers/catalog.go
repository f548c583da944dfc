package handlers

import (
	"net/http"
	"slices"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/nutrition"
	"github.com/giygas/protocols-api/recommend"
	"github.com/go-chi/chi/v5"
)

// ailmentIDsRequest is the body of the stateless nutrition and recommendation endpoints
type ailmentIDsRequest struct {
	AilmentIDs []string `json:"ailmentIds"`
}

// ListCategories returns every ailment category
func (h *HTTPHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	h.RespondWithJSON(w, http.StatusOK, h.catalog.Categories())
}

// ListAilments returns the ailments, optionally narrowed by category and a search term
func (h *HTTPHandlerImpl) ListAilments(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	query := r.URL.Query().Get("q")

	var ailments []entities.Ailment
	switch {
	case query != "":
		if err := h.validator.ValidateInput(query); err != nil {
			logging.Warn("Unusual user input", "q", query)
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		ailments = h.catalog.Search(query)
	default:
		ailments = h.catalog.Ailments()
	}

	if category != "" {
		if _, ok := h.catalog.Category(category); !ok {
			h.RespondWithError(w, http.StatusNotFound, "Category not found")
			return
		}
		ailments = slices.DeleteFunc(ailments, func(a entities.Ailment) bool {
			return a.Category != category
		})
	}

	if ailments == nil {
		ailments = []entities.Ailment{}
	}
	h.RespondWithJSON(w, http.StatusOK, ailments)
}

// GetAilment returns one ailment
func (h *HTTPHandlerImpl) GetAilment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validator.ValidateIdentifier(id); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	ailment, ok := h.catalog.Lookup(id)
	if !ok {
		h.RespondWithError(w, http.StatusNotFound, "Ailment not found")
		return
	}
	h.RespondWithJSON(w, http.StatusOK, ailment)
}

// ListProtocols returns the protocols matching every given filter
func (h *HTTPHandlerImpl) ListProtocols(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	protocols := h.catalog.Protocols()

	if v := q.Get("intensity"); v != "" {
		level := entities.Intensity(v)
		if !slices.Contains([]entities.Intensity{entities.IntensityGentle, entities.IntensityModerate, entities.IntensityIntensive}, level) {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid intensity")
			return
		}
		protocols = intersect(protocols, recommend.ByIntensity(h.catalog, level))
	}

	if v := q.Get("type"); v != "" {
		kind := entities.ProtocolType(v)
		if !slices.Contains([]entities.ProtocolType{entities.ProtocolTraditional, entities.ProtocolAyurvedic,
			entities.ProtocolModern, entities.ProtocolCombination}, kind) {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid protocol type")
			return
		}
		protocols = intersect(protocols, recommend.ByType(h.catalog, kind))
	}

	if v := q.Get("region"); v != "" {
		region := entities.Region(v)
		if !slices.Contains(entities.Regions, region) {
			h.RespondWithError(w, http.StatusBadRequest, "Invalid region")
			return
		}
		protocols = intersect(protocols, recommend.ByRegion(h.catalog, region))
	}

	h.RespondWithJSON(w, http.StatusOK, protocols)
}

// intersect keeps the protocols of a that also appear in b, in the order of a
func intersect(a, b []entities.Protocol) []entities.Protocol {
	keep := make(map[string]bool, len(b))
	for _, p := range b {
		keep[p.ID] = true
	}
	out := []entities.Protocol{}
	for _, p := range a {
		if keep[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// GetProtocol returns one protocol
func (h *HTTPHandlerImpl) GetProtocol(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.validator.ValidateIdentifier(id); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	protocol, ok := h.catalog.Protocol(id)
	if !ok {
		h.RespondWithError(w, http.StatusNotFound, "Protocol not found")
		return
	}
	h.RespondWithJSON(w, http.StatusOK, protocol)
}

// readAilmentIDs decodes and validates an ailmentIds body
func (h *HTTPHandlerImpl) readAilmentIDs(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	var req ailmentIDsRequest
	if err := decodeJSON(r, &req, false); err != nil {
		h.RespondWithError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if len(req.AilmentIDs) > maxIDsPerRequest {
		h.RespondWithError(w, http.StatusBadRequest, "Too many ailment ids")
		return nil, false
	}
	for _, id := range req.AilmentIDs {
		if err := h.validator.ValidateIdentifier(id); err != nil {
			h.RespondWithError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}
	return req.AilmentIDs, true
}

// AggregateNutrition merges the nutritional guidance of the given ailments.
// Unknown ids are ignored.
func (h *HTTPHandlerImpl) AggregateNutrition(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.readAilmentIDs(w, r)
	if !ok {
		return
	}
	h.RespondWithJSON(w, http.StatusOK, nutrition.Aggregate(h.catalog, ids))
}

// RecommendProtocols ranks protocols against the given ailments
func (h *HTTPHandlerImpl) RecommendProtocols(w http.ResponseWriter, r *http.Request) {
	ids, ok := h.readAilmentIDs(w, r)
	if !ok {
		return
	}
	h.RespondWithJSON(w, http.StatusOK, recommend.Recommend(h.catalog, ids))
}
