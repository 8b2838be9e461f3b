// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinelookup/internal/format"
	"github.com/tomtom215/cinelookup/internal/models"
)

// healthStatus reports the loaded dataset. The service is healthy once the
// movies table holds at least one row.
func (h *Handler) healthStatus() models.HealthStatus {
	status := models.HealthStatus{
		Status:  "degraded",
		Version: Version,
		Uptime:  time.Since(h.startTime).Seconds(),
	}

	if h.engine == nil {
		return status
	}

	tables := h.engine.Tables()
	status.DatasetSource = tables.Source
	status.MoviesLoaded = len(tables.Movies)
	status.RecommendationsLoaded = len(tables.Recommendations)
	status.LoadedAt = tables.LoadedAt
	if status.MoviesLoaded > 0 {
		status.Status = "healthy"
	}
	return status
}

// Health handles GET /health
//
// Returns the dataset source, row counts, load time and uptime. Honours the
// format query parameter; the text format prints the status word only.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	f, ok := h.formatter(w, r)
	if !ok {
		return
	}
	respond(w, r, f, http.StatusOK, h.healthStatus(), models.Metadata{Timestamp: time.Now()})
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of the dataset.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	body, _ := format.JSON{}.Success(map[string]any{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	}, models.Metadata{Timestamp: time.Now()})

	w.Header().Set("Content-Type", format.JSON{}.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, r, http.StatusOK, body)
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only once the dataset is loaded, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := h.healthStatus()
	ready := status.Status == "healthy"

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	body, _ := format.JSON{}.Success(map[string]any{
		"ready_to_serve": ready,
		"movies_loaded":  status.MoviesLoaded,
		"uptime":         status.Uptime,
	}, models.Metadata{Timestamp: time.Now()})

	w.Header().Set("Content-Type", format.JSON{}.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, r, statusCode, body)
}
