// SPDX-License-Identifier: MIT

// Package api provides the HTTP surface of the status interpreter daemon.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/posecare/statusd/internal/api/middleware"
	"github.com/posecare/statusd/internal/config"
	"github.com/posecare/statusd/internal/health"
	xglog "github.com/posecare/statusd/internal/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the interpreter core to HTTP consumers.
type Server struct {
	holder *config.Holder
	health *health.Manager
}

// New creates a server around the live configuration holder.
func New(holder *config.Holder, healthManager *health.Manager) *Server {
	return &Server{holder: holder, health: healthManager}
}

// Router builds the chi router with the canonical middleware stack applied.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	// Recoverer outermost, then correlation, then observability, then limits.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Metrics())
	r.Use(xglog.Middleware())
	r.Use(s.rateLimit)

	r.Get("/healthz", s.health.ServeHealth)
	r.Get("/readyz", s.health.ServeReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/interpret", s.handleInterpret)
		r.Post("/validate", s.handleValidate)
		r.Get("/statuses", s.handleStatuses)
	})

	return r
}

// rateLimit applies the httprate limiter built from the boot configuration.
// The enable toggle is honoured on config hot reload; changing the budget
// itself requires a restart because the sliding-window state lives in the
// limiter.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	boot := s.holder.Get()
	limited := middleware.RateLimit(middleware.RateLimitConfig{
		RequestLimit: boot.RateLimitRPM,
		WindowSize:   config.RateLimitWindow,
	})(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.holder.Get().RateLimitEnabled {
			next.ServeHTTP(w, r)
			return
		}
		limited.ServeHTTP(w, r)
	})
}
