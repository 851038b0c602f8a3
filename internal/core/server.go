// Package core provides the API chassis for the OutdoorCast service.
// It creates a chi router and enforces cross-cutting concerns -- logging,
// panic recovery, request correlation, timeouts, and error handling -- before
// requests reach the suitability handlers.
package core

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"outdoorcast/internal/config"
	"outdoorcast/internal/observability"
	"outdoorcast/internal/suitability"
)

// Server encapsulates all dependencies for the OutdoorCast API, allowing for
// easy injection during testing and distinct configuration for different
// environments.
type Server struct {
	Config      *config.Config
	Logger      *slog.Logger
	Suitability *suitability.Service
	Metrics     *observability.Metrics

	router *chi.Mux
}

// NewServer initializes dependencies, sets up the router, and prepares the
// server for route mounting. It performs a fail-fast check on critical
// dependencies.
func NewServer(
	cfg *config.Config,
	svc *suitability.Service,
	metrics *observability.Metrics,
	logger *slog.Logger,
) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if svc == nil {
		return nil, fmt.Errorf("suitability service must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	s := &Server{
		Config:      cfg,
		Logger:      logger,
		Suitability: svc,
		Metrics:     metrics,
		router:      chi.NewRouter(),
	}

	return s, nil
}

// Handler returns the http.Handler interface for the router.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Router returns the underlying chi.Mux for route registration.
// This is used internally by route-mounting methods and tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}
