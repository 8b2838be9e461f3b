// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package models

import (
	"time"
)

// APIResponse is the envelope for every JSON response.
//
// Status is "success" or "error". Data holds the query result on success and
// Error the failure details otherwise.
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"month": "Enero", "count": 5912},
//	  "metadata": {"timestamp": "2026-01-05T12:00:00Z", "query_time_ms": 1}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "metadata": {"timestamp": "2026-01-05T12:00:00Z"},
//	  "error": {"code": "UNKNOWN_KEY", "message": "unknown month: \"Foo\""}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
// QueryTimeMS is 0 and Cached is true when the result came from the response cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError is a machine-readable error code with a human-readable message.
//
// Codes used by the query endpoints:
//   - VALIDATION_ERROR: malformed path key
//   - UNKNOWN_KEY: month or day word not recognised
//   - NOT_FOUND: no row for the title or director
//   - INTERNAL_ERROR: anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus reports whether the service has its tables loaded.
type HealthStatus struct {
	Status                string    `json:"status"`
	Version               string    `json:"version"`
	DatasetSource         string    `json:"dataset_source"`
	MoviesLoaded          int       `json:"movies_loaded"`
	RecommendationsLoaded int       `json:"recommendations_loaded"`
	LoadedAt              time.Time `json:"loaded_at"`
	Uptime                float64   `json:"uptime"`
}
