// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package metrics defines the Prometheus metrics exported by Cinelookup.

All collectors are registered with the default registry through promauto and
served by promhttp at /metrics:

	curl http://localhost:8000/metrics

# Available Metrics

HTTP:
  - api_requests_total{method, endpoint, status_code} (counter)
  - api_request_duration_seconds{method, endpoint} (histogram)
  - api_active_requests (gauge)

The endpoint label is the chi route pattern, e.g. /score_titulo/{title}, so
user-supplied keys never become label values.

Dataset:
  - dataset_rows_loaded{table} (gauge)
  - dataset_load_duration_seconds{source} (histogram)

SQL source:
  - db_query_duration_seconds{operation, table} (histogram)
  - db_query_errors_total{operation, table, error_type} (counter)

Queries:
  - query_outcomes_total{operation, outcome} (counter). Outcomes are found,
    not_found, unknown_key, insufficient_votes and empty.

Response cache:
  - response_cache_hits_total{operation} and response_cache_misses_total{operation} (counters)
  - response_cache_entries (gauge)
*/
package metrics
