// Package server provides HTTP server management and lifecycle handling for the protocols API.
// It includes server setup, middleware configuration, route management and graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/giygas/protocols-api/config"
	"github.com/giygas/protocols-api/interfaces"
	"github.com/giygas/protocols-api/logging"
	"github.com/giygas/protocols-api/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server represents the HTTP server
type Server struct {
	server  *http.Server
	router  chi.Router
	handler interfaces.HTTPHandler
	limiter *RateLimiter
	config  *config.Config
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, handler interfaces.HTTPHandler) *Server {
	router := chi.NewRouter()

	// generation may take as long as the upstream timeout
	writeTimeout := cfg.GenerationTimeout + 15*time.Second

	server := &Server{
		server: &http.Server{
			Handler:        router,
			Addr:           cfg.ListenAddr(),
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    60 * time.Second,
			MaxHeaderBytes: int(cfg.MaxHeaderSize),
		},
		router:  router,
		handler: handler,
		limiter: NewRateLimiter(),
		config:  cfg,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

// setupMiddleware configures all middleware
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	if s.config.IsProduction() {
		// Put BEFORE RealIPMiddleware to see original RemoteAddr
		s.router.Use(BlockDirectAccessMiddleware)
	}
	s.router.Use(RealIPMiddleware)
	s.router.Use(metrics.Metrics)
	s.router.Use(logging.LoggingMiddleware(logging.Logger()))
	s.router.Use(middleware.RedirectSlashes)
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-RateLimit-Remaining", "Retry-After"},
		MaxAge:         300,
	}))
	s.router.Use(RequestSizeMiddleware(s.config))
	s.router.Use(s.limiter.Middleware)
}

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	h := s.handler

	s.router.Get("/health", h.HealthCheck)
	s.router.Handle("/metrics", promhttp.Handler())

	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/ailments", h.ListAilments)
		r.Get("/ailments/{id}", h.GetAilment)
		r.Get("/protocols", h.ListProtocols)
		r.Get("/protocols/{id}", h.GetProtocol)
		r.Post("/nutrition", h.AggregateNutrition)
		r.Post("/recommendations", h.RecommendProtocols)

		r.Post("/sessions", h.CreateSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Patch("/longevity", h.UpdateLongevity)
			r.Patch("/cleanse", h.UpdateCleanse)
			r.Patch("/ailments", h.UpdateAilmentSettings)
			r.Put("/ailments/{ailmentID}", h.SelectAilment)
			r.Delete("/ailments/{ailmentID}", h.DeselectAilment)
			r.Patch("/progress", h.UpdateProgress)
			r.Post("/protocols/{family}/enable", h.EnableProtocol)
			r.Post("/protocols/{family}/disable", h.DisableProtocol)
			r.Post("/consent/accept", h.AcceptConsent)
			r.Post("/consent/decline", h.DeclineConsent)
			r.Post("/plans/{family}", h.GeneratePlan)
		})

		r.Get("/plans/{planID}", h.GetPlan)
	})
}

// Start starts the server and blocks until it stops. A graceful shutdown is not
// reported as an error.
func (s *Server) Start() error {
	s.limiter.Start()
	logging.Info("Starting server", "addr", s.server.Addr, "env", s.config.Env)

	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")
	s.limiter.Stop()

	if err := s.server.Shutdown(ctx); err != nil {
		logging.Error("Server forced to shutdown", "error", err)
		// If graceful shutdown fails, force close
		if err := s.server.Close(); err != nil {
			logging.Error("Server close error", "error", err)
			return err
		}
	}

	logging.Info("Server shutdown complete")
	return nil
}

// Router exposes the configured router, mainly for tests
func (s *Server) Router() http.Handler {
	return s.router
}
