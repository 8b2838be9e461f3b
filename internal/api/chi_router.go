// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/cinelookup/internal/config"
	"github.com/tomtom215/cinelookup/internal/format"
	"github.com/tomtom215/cinelookup/internal/middleware"
)

// Router wires the handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil cfg uses the default middleware settings.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	if cfg != nil {
		mwConfig = ChiMiddlewareConfigFrom(&cfg.Security)
	}
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestIDWithLogging) // X-Request-ID plus logging context
	r.Use(chimiddleware.RealIP)            // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)         // Recover from panics
	r.Use(router.chiMiddleware.CORS())     // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/health", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// ========================
	// Query Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json", "text/plain"))

		r.Get("/cantidad_filmaciones_mes/{month}", router.handler.CountByMonth)
		r.Get("/cantidad_filmaciones_dia/{day}", router.handler.CountByDay)
		r.Get("/score_titulo/{title}", router.handler.ScoreByTitle)
		r.Get("/votos_titulo/{title}", router.handler.VotesByTitle)
		r.Get("/get_actor/{actor}", router.handler.ActorSummary)
		r.Get("/get_director/{director}", router.handler.DirectorSummary)
		r.Get("/recomendacion/{title}", router.handler.Recommendations)
	})

	// ========================
	// Metrics
	// ========================
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, format.JSON{}, http.StatusNotFound, ErrCodeNotFound, "Ruta no encontrada", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respondError(w, req, format.JSON{}, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}
