// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package middleware provides chi-compatible HTTP middleware.

  - RequestIDWithLogging: request and correlation IDs for the logging context
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by
    chi route pattern

Both have the func(http.Handler) http.Handler shape accepted by chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestIDWithLogging)
	r.Group(func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Get("/score_titulo/{title}", h.ScoreByTitle)
	})

PrometheusMetrics reads the route pattern after the request is served, so it
must run inside the router (r.Use), not wrapped around it.
*/
package middleware
