package logging

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func newCapturingLogger() (*slog.Logger, *strings.Builder) {
	var out strings.Builder
	return slog.New(slog.NewTextHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug})), &out
}

func TestLoggingMiddlewareSkipsHealthAndMetrics(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, path := range []string{"/health", "/metrics"} {
		out.Reset()
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, rr.Code)
		}
		if out.String() != "" {
			t.Errorf("%s: expected no logs, got: %s", path, out.String())
		}
	}
}

func TestLoggingMiddlewareFields(t *testing.T) {
	logger, out := newCapturingLogger()

	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger))
	r.Get("/v1/ailments/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/ailments/ibs?verbose=1", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-42"))
	r.ServeHTTP(httptest.NewRecorder(), req)

	logs := out.String()
	for _, want := range []string{
		"HTTP request",
		"request_id=req-42",
		"path=/v1/ailments/ibs",
		"route=/v1/ailments/{id}",
		"query=verbose=1",
		"status_code=200",
		"bytes_written=2",
		"level=INFO",
	} {
		if !strings.Contains(logs, want) {
			t.Errorf("log should contain %q, got: %s", want, logs)
		}
	}
}

func TestLoggingMiddlewareRequestIDFallback(t *testing.T) {
	logger, out := newCapturingLogger()
	handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, 12345))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !strings.Contains(out.String(), "request_id=unknown") {
		t.Errorf("log should contain request_id=unknown for non-string ID, got: %s", out.String())
	}
	if strings.Contains(out.String(), "query=") {
		t.Errorf("log should not contain query field when empty, got: %s", out.String())
	}
}

func TestLoggingMiddlewareLevels(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{http.StatusOK, "level=INFO"},
		{http.StatusNotFound, "level=WARN"},
		{http.StatusConflict, "level=WARN"},
		{http.StatusBadGateway, "level=ERROR"},
	}

	for _, tt := range tests {
		logger, out := newCapturingLogger()
		handler := LoggingMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/sessions", nil))

		if !strings.Contains(out.String(), tt.level) {
			t.Errorf("status %d: expected %s, got: %s", tt.status, tt.level, out.String())
		}
	}
}
