package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/giygas/protocols-api/catalog"
	"github.com/giygas/protocols-api/config"
	"github.com/giygas/protocols-api/generation"
	"github.com/giygas/protocols-api/handlers"
	"github.com/giygas/protocols-api/health"
	"github.com/giygas/protocols-api/sessions"
	"github.com/giygas/protocols-api/validation"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:              "0",
		Address:           "127.0.0.1",
		Env:               config.EnvTest,
		MaxRequestBody:    1 << 20,
		MaxHeaderSize:     1 << 20,
		GenerationTimeout: 5 * time.Second,
		AllowedOrigins:    []string{"https://app.example.com"},
	}
}

func newTestServer(t *testing.T, generatorURL string) *Server {
	t.Helper()
	cat := catalog.Default()
	registry := sessions.NewRegistry(cat)
	service := generation.NewService(generation.NewClient(generatorURL), nil)
	h := handlers.NewHTTPHandler(cat, registry, nil, service, validation.NewDataValidator(),
		health.NewHealthChecker(cat, registry, nil))
	return NewServer(testConfig(), h)
}

func serve(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestNewServer(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	if s.server.Addr != "127.0.0.1:0" {
		t.Errorf("Addr = %s", s.server.Addr)
	}
	if s.server.WriteTimeout < 5*time.Second {
		t.Errorf("WriteTimeout %s shorter than the generation timeout", s.server.WriteTimeout)
	}
	if s.server.MaxHeaderBytes != 1<<20 {
		t.Errorf("MaxHeaderBytes = %d", s.server.MaxHeaderBytes)
	}
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/v1/categories", http.StatusOK},
		{http.MethodGet, "/v1/ailments", http.StatusOK},
		{http.MethodGet, "/v1/ailments/ibs", http.StatusOK},
		{http.MethodGet, "/v1/protocols/classic-herbal-trio", http.StatusOK},
		{http.MethodGet, "/v1/sessions/unknown", http.StatusNotFound},
		{http.MethodGet, "/v1/nope", http.StatusNotFound},
		{http.MethodGet, "/v1/nutrition", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		if rr := serve(s, tt.method, tt.path, ""); rr.Code != tt.want {
			t.Errorf("%s %s: status = %d, want %d", tt.method, tt.path, rr.Code, tt.want)
		}
	}
}

func TestMiddlewareHeaders(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	rr := serve(s, http.MethodGet, "/v1/categories", "")
	if rr.Header().Get("X-RateLimit-Remaining") == "" {
		t.Error("rate limit headers missing")
	}

	req := httptest.NewRequest(http.MethodOptions, "/v1/sessions", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr = httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRecovererReturns500(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")
	s.router.Get("/panic", func(w http.ResponseWriter, r *http.Request) { panic("boom") })

	if rr := serve(s, http.MethodGet, "/panic", ""); rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rr.Code)
	}
}

// TestGenerationFlow drives a session through consent and generation against a
// fake plan generator
func TestGenerationFlow(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	generator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"plan":{"weeks":4}}`))
	}))
	defer generator.Close()

	s := newTestServer(t, generator.URL)

	rr := serve(s, http.MethodPost, "/v1/sessions", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("create: %d", rr.Code)
	}
	var session handlers.SessionResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &session)
	base := "/v1/sessions/" + session.ID

	if rr := serve(s, http.MethodPost, base+"/plans/cleanse", ""); rr.Code != http.StatusUnprocessableEntity {
		t.Errorf("disabled family: status = %d", rr.Code)
	}

	serve(s, http.MethodPost, base+"/protocols/cleanse/enable", "")
	consent := `{"hasReadDisclaimer":true,"hasConsented":true,"acknowledgedRisks":true,
"hasHealthcareProviderApproval":true,"pregnancyScreeningComplete":true,"medicalConditionsScreened":true}`
	if rr := serve(s, http.MethodPost, base+"/consent/accept", consent); rr.Code != http.StatusOK {
		t.Fatalf("accept: %d %s", rr.Code, rr.Body.String())
	}

	rr = serve(s, http.MethodPost, base+"/plans/cleanse", `{"clientName":"Sam"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("generate: %d %s", rr.Code, rr.Body.String())
	}
	if gotPath != "/generate/parasite-cleanse" {
		t.Errorf("generator path = %s", gotPath)
	}
	if gotBody["duration"] != "30" || gotBody["healthcareProviderConsent"] != true || gotBody["clientName"] != "Sam" {
		t.Errorf("unexpected payload: %v", gotBody)
	}

	var result generation.Result
	_ = json.Unmarshal(rr.Body.Bytes(), &result)
	if string(result.Plan) != `{"weeks":4}` {
		t.Errorf("plan = %s", result.Plan)
	}
}

func TestGenerationUpstreamFailure(t *testing.T) {
	generator := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer generator.Close()

	s := newTestServer(t, generator.URL)
	rr := serve(s, http.MethodPost, "/v1/sessions", "")
	var session handlers.SessionResponse
	_ = json.Unmarshal(rr.Body.Bytes(), &session)

	base := "/v1/sessions/" + session.ID

	// ailments are not gated, so generation reaches the upstream service
	serve(s, http.MethodPatch, base+"/ailments", `{"includeInPlanning":true}`)
	if rr := serve(s, http.MethodPut, base+"/ailments/ibs", ""); rr.Code != http.StatusOK {
		t.Fatalf("select: %d", rr.Code)
	}
	rr = serve(s, http.MethodPost, base+"/plans/ailments", "")
	if rr.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502: %s", rr.Code, rr.Body.String())
	}
}

func TestServerLifecycle(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	errCh := make(chan error, 1)
	go func() { errCh <- s.Start() }()
	time.Sleep(50 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Start returned %v after graceful shutdown", err)
		}
	case <-time.After(2 * time.Second):
		t.Error("Start did not return")
	}
}
