package handlers

import (
	"net/http"
	"testing"

	"github.com/giygas/protocols-api/entities"
	"github.com/giygas/protocols-api/recommend"
)

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)
	rr := env.do(t, http.MethodGet, "/v1/categories", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	categories := decode[[]entities.AilmentCategory](t, rr)
	if len(categories) == 0 || categories[0].ID != "cardiovascular" {
		t.Errorf("unexpected categories: %v", categories)
	}
}

func TestListAilments(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		check      func(t *testing.T, ailments []entities.Ailment)
	}{
		{
			name:       "all",
			path:       "/v1/ailments",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, ailments []entities.Ailment) {
				if ailments[0].ID != "hypertension" {
					t.Errorf("first ailment = %s", ailments[0].ID)
				}
			},
		},
		{
			name:       "by category",
			path:       "/v1/ailments?category=digestive",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, ailments []entities.Ailment) {
				if len(ailments) == 0 {
					t.Fatal("no digestive ailments")
				}
				for _, a := range ailments {
					if a.Category != "digestive" {
						t.Errorf("%s has category %s", a.ID, a.Category)
					}
				}
			},
		},
		{
			name:       "search",
			path:       "/v1/ailments?q=blood",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, ailments []entities.Ailment) {
				if len(ailments) == 0 {
					t.Error("search returned nothing")
				}
			},
		},
		{
			name:       "search without match",
			path:       "/v1/ailments?q=zzzzzz",
			wantStatus: http.StatusOK,
			check: func(t *testing.T, ailments []entities.Ailment) {
				if ailments == nil || len(ailments) != 0 {
					t.Errorf("expected empty array, got %v", ailments)
				}
			},
		},
		{name: "unknown category", path: "/v1/ailments?category=unknown", wantStatus: http.StatusNotFound},
		{name: "dangerous search", path: "/v1/ailments?q=%3Cscript%3E", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, tt.path, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rr.Code, tt.wantStatus, rr.Body.String())
			}
			if tt.check != nil {
				tt.check(t, decode[[]entities.Ailment](t, rr))
			}
		})
	}
}

func TestGetAilment(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/v1/ailments/ibs", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if a := decode[entities.Ailment](t, rr); a.ID != "ibs" {
		t.Errorf("ID = %s", a.ID)
	}

	if rr := env.do(t, http.MethodGet, "/v1/ailments/unknown", ""); rr.Code != http.StatusNotFound {
		t.Errorf("unknown ailment status = %d", rr.Code)
	}
	if rr := env.do(t, http.MethodGet, "/v1/ailments/Not%20Valid", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d", rr.Code)
	}
}

func TestListProtocols(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		path       string
		wantStatus int
		wantIDs    []string
	}{
		{"/v1/protocols?intensity=intensive", http.StatusOK, []string{"intensive-combination-protocol"}},
		{"/v1/protocols?type=modern", http.StatusOK, []string{"oregano-oil-protocol", "modern-binder-protocol"}},
		{"/v1/protocols?type=modern&intensity=gentle", http.StatusOK, []string{}},
		{"/v1/protocols?intensity=extreme", http.StatusBadRequest, nil},
		{"/v1/protocols?type=unknown", http.StatusBadRequest, nil},
		{"/v1/protocols?region=mars", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rr := env.do(t, http.MethodGet, tt.path, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantIDs == nil {
				return
			}
			protocols := decode[[]entities.Protocol](t, rr)
			if len(protocols) != len(tt.wantIDs) {
				t.Fatalf("got %d protocols, want %v", len(protocols), tt.wantIDs)
			}
			for i, p := range protocols {
				if p.ID != tt.wantIDs[i] {
					t.Errorf("protocol %d = %s, want %s", i, p.ID, tt.wantIDs[i])
				}
			}
		})
	}

	all := decode[[]entities.Protocol](t, env.do(t, http.MethodGet, "/v1/protocols", ""))
	if len(all) != 6 {
		t.Errorf("unfiltered list has %d protocols", len(all))
	}
	us := decode[[]entities.Protocol](t, env.do(t, http.MethodGet, "/v1/protocols?region=us", ""))
	for _, p := range us {
		if !p.Availability.Available(entities.RegionUS) {
			t.Errorf("%s is not available in the us", p.ID)
		}
	}
}

func TestGetProtocol(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/v1/protocols/classic-herbal-trio", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if rr := env.do(t, http.MethodGet, "/v1/protocols/nope", ""); rr.Code != http.StatusNotFound {
		t.Errorf("unknown protocol status = %d", rr.Code)
	}
}

func TestAggregateNutrition(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/v1/nutrition", `{"ailmentIds":["hypertension","unknown"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rr.Code, rr.Body.String())
	}
	focus := decode[entities.NutritionalFocus](t, rr)
	if focus.IsEmpty() {
		t.Error("expected guidance for hypertension")
	}

	empty := decode[entities.NutritionalFocus](t, env.do(t, http.MethodPost, "/v1/nutrition", `{"ailmentIds":[]}`))
	if empty.BeneficialFoods == nil || !empty.IsEmpty() {
		t.Errorf("empty selection should give empty non-nil sets: %+v", empty)
	}

	for _, body := range []string{``, `{"ailmentIds":["<bad>"]}`, `{"unknown":1}`, `{"ailmentIds":[]}{}`} {
		if rr := env.do(t, http.MethodPost, "/v1/nutrition", body); rr.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d", body, rr.Code)
		}
	}
}

func TestRecommendProtocols(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/v1/recommendations", `{"ailmentIds":["ibs","candida"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	recs := decode[[]recommend.Recommendation](t, rr)
	if len(recs) == 0 {
		t.Fatal("no recommendations")
	}
	if recs[0].Protocol.ID != "classic-herbal-trio" || recs[0].MatchScore != 100 {
		t.Errorf("top recommendation = %s (%d)", recs[0].Protocol.ID, recs[0].MatchScore)
	}
}

func TestRecommendProtocolsRepeatedIDs(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/v1/recommendations", `{"ailmentIds":["acne","acne"]}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	recs := decode[[]recommend.Recommendation](t, rr)
	if len(recs) != 1 || recs[0].MatchScore != 100 {
		t.Errorf("recommendations = %+v", recs)
	}
}
