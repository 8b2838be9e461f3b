// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package api provides the HTTP layer for Cinelookup.

It exposes seven read-only query endpoints over the in-memory dataset plus
health probes and Prometheus metrics. Handlers validate the path key, call the
query engine and render the result with the formatter chosen by the format
query parameter (json or text, defaulting to API_RESPONSE_FORMAT).

Endpoints:

	GET /cantidad_filmaciones_mes/{month}   films released in a Spanish month
	GET /cantidad_filmaciones_dia/{day}     films released on a Spanish day word
	GET /score_titulo/{title}               release year, popularity and average
	GET /votos_titulo/{title}               vote totals, 2000 votes minimum
	GET /get_actor/{actor}                  actor return totals
	GET /get_director/{director}            director filmography and returns
	GET /recomendacion/{title}              precomputed recommendations
	GET /health, /health/live, /health/ready
	GET /metrics

Error Mapping:

Unknown month and day words answer 404 with code UNKNOWN_KEY. Titles,
directors and recommendation keys with no matching row answer 404 with code
NOT_FOUND. Empty, oversized or control-character keys answer 400 with code
VALIDATION_ERROR, and an unsupported format answers 400 INVALID_FORMAT.

Middleware Stack:

  - RequestIDWithLogging, RealIP, Recoverer and CORS on every route
  - httprate limiting per client IP on the query endpoints
  - security headers, Prometheus request metrics and gzip compression

Caching:

Actor and director summaries scan the whole movies table, so successful
results are memoized in an LRU cache keyed by the title-cased name. Every
successful response carries an ETag and honours If-None-Match.

Thread Safety:

Handler is safe for concurrent use. The engine is read-only after
construction and the cache serialises its own access.
*/
package api
