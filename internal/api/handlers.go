// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"time"

	"github.com/tomtom215/cinelookup/internal/cache"
	"github.com/tomtom215/cinelookup/internal/config"
	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/query"
)

// Version is reported by the health endpoint. Set at build time with
// -ldflags "-X github.com/tomtom215/cinelookup/internal/api.Version=...".
var Version = "dev"

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, validation and error mapping helpers
//   - handlers_query.go: the seven query endpoints
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	engine    *query.Engine
	config    *config.Config
	cache     *cache.Cache
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// The cache memoizes actor and director summaries. A nil cache disables
// memoization, as does a cache with a zero TTL.
//
// Example:
//
//	handler := api.NewHandler(engine, cfg, cache.New(cfg.API.CacheTTL, cfg.API.CacheMaxEntries))
//	router := api.NewRouter(handler, cfg)
//	http.ListenAndServe(cfg.Server.Addr(), router.Setup())
func NewHandler(engine *query.Engine, cfg *config.Config, c *cache.Cache) *Handler {
	if c != nil && c.TTL() <= 0 {
		c = nil
	}
	return &Handler{
		engine:    engine,
		config:    cfg,
		cache:     c,
		startTime: time.Now(),
	}
}

// ClearCache drops every memoized summary.
func (h *Handler) ClearCache() {
	if h.cache != nil {
		h.cache.Clear()
		logging.Info().Msg("Response cache cleared")
	}
}
