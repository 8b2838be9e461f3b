// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query outcome label values.
const (
	OutcomeFound             = "found"
	OutcomeNotFound          = "not_found"
	OutcomeUnknownKey        = "unknown_key"
	OutcomeInsufficientVotes = "insufficient_votes"
	OutcomeEmpty             = "empty"
	OutcomeError             = "error"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Dataset Metrics
	DatasetRowsLoaded = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows_loaded",
			Help: "Number of rows held in memory per table",
		},
		[]string{"table"},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time taken to load the dataset tables",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of SQL source queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_query_errors_total",
			Help: "Total number of SQL source query errors",
		},
		[]string{"operation", "table", "error_type"},
	)

	// Query Engine Metrics
	QueryOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_outcomes_total",
			Help: "Query results by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	// Response Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_hits_total",
			Help: "Total number of response cache hits",
		},
		[]string{"operation"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "response_cache_misses_total",
			Help: "Total number of response cache misses",
		},
		[]string{"operation"},
	)

	CacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "response_cache_entries",
			Help: "Current number of cached responses",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records a completed table load.
func RecordDatasetLoad(source string, duration time.Duration, movies, recommendations int) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	DatasetRowsLoaded.WithLabelValues("movies").Set(float64(movies))
	DatasetRowsLoaded.WithLabelValues("recommendations").Set(float64(recommendations))
}

// RecordDBQuery records a SQL source query. Errors are counted by category.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table, errorType(err)).Inc()
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "query"
	}
}

// RecordQueryOutcome counts one query result.
func RecordQueryOutcome(operation, outcome string) {
	QueryOutcomes.WithLabelValues(operation, outcome).Inc()
}

// RecordCacheHit counts a response cache hit.
func RecordCacheHit(operation string) {
	CacheHits.WithLabelValues(operation).Inc()
}

// RecordCacheMiss counts a response cache miss.
func RecordCacheMiss(operation string) {
	CacheMisses.WithLabelValues(operation).Inc()
}

// SetCacheEntries sets the current response cache size.
func SetCacheEntries(n int) {
	CacheEntries.Set(float64(n))
}
