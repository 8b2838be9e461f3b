// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinelookup/internal/cache"
	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/metrics"
	"github.com/tomtom215/cinelookup/internal/query"
)

// queryFunc runs one engine operation for a validated key.
type queryFunc func(key string) (any, error)

// serveQuery is the shared flow of every query endpoint: pick the format,
// read and validate the path key, run the query, then render the result or
// map the error.
func (h *Handler) serveQuery(w http.ResponseWriter, r *http.Request, op, param string, run queryFunc, memoize bool) {
	f, ok := h.formatter(w, r)
	if !ok {
		return
	}

	key, ok := h.pathKey(w, r, f, param)
	if !ok {
		return
	}

	if h.engine == nil {
		respondError(w, r, f, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Dataset not loaded", nil)
		return
	}

	start := time.Now()

	var (
		result any
		cached bool
		err    error
	)
	if memoize {
		result, cached, err = h.cachedQuery(op, key, run)
	} else {
		result, err = run(key)
	}
	if err != nil {
		respondQueryError(w, r, f, op, err)
		return
	}

	metrics.RecordQueryOutcome(op, outcomeOf(result))
	logging.Ctx(r.Context()).Debug().
		Str("operation", op).
		Str("key", logging.SanitizeValue(key)).
		Bool("cached", cached).
		Dur("duration", time.Since(start)).
		Msg("Query served")

	respond(w, r, f, http.StatusOK, result, newMetadata(start, cached))
}

// cachedQuery memoizes successful results under the normalised key. Errors are
// never cached.
func (h *Handler) cachedQuery(op, key string, run queryFunc) (any, bool, error) {
	if h.cache == nil {
		result, err := run(key)
		return result, false, err
	}

	cacheKey := cache.GenerateKey(op, query.TitleCase(key))
	if result, ok := h.cache.Get(cacheKey); ok {
		metrics.RecordCacheHit(op)
		return result, true, nil
	}
	metrics.RecordCacheMiss(op)

	result, err := run(key)
	if err != nil {
		return nil, false, err
	}
	h.cache.Set(cacheKey, result)
	return result, false, nil
}

// CountByMonth handles GET /cantidad_filmaciones_mes/{month}
//
// Counts films released in a Spanish month name (case-insensitive).
// Unknown months return 404 UNKNOWN_KEY.
func (h *Handler) CountByMonth(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opCountByMonth, "month", func(key string) (any, error) {
		return h.engine.CountByMonth(key)
	}, false)
}

// CountByDay handles GET /cantidad_filmaciones_dia/{day}
//
// Counts films released on a Spanish day-of-month word (uno ... treinta y uno).
func (h *Handler) CountByDay(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opCountByDay, "day", func(key string) (any, error) {
		return h.engine.CountByDay(key)
	}, false)
}

// ScoreByTitle handles GET /score_titulo/{title}
func (h *Handler) ScoreByTitle(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opScoreByTitle, "title", func(key string) (any, error) {
		return h.engine.ScoreByTitle(key)
	}, false)
}

// VotesByTitle handles GET /votos_titulo/{title}
//
// Films with fewer than 2000 votes yield the insufficient-votes result with
// status 200.
func (h *Handler) VotesByTitle(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opVotesByTitle, "title", func(key string) (any, error) {
		return h.engine.VotesByTitle(key)
	}, false)
}

// ActorSummary handles GET /get_actor/{actor}
//
// An actor with no films is not an error: the count is 0 and the mean null.
func (h *Handler) ActorSummary(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opActorSummary, "actor", func(key string) (any, error) {
		return h.engine.ActorSummary(key)
	}, true)
}

// DirectorSummary handles GET /get_director/{director}
func (h *Handler) DirectorSummary(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opDirectorSummary, "director", func(key string) (any, error) {
		return h.engine.DirectorSummary(key)
	}, true)
}

// Recommendations handles GET /recomendacion/{title}
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	h.serveQuery(w, r, opRecommendations, "title", func(key string) (any, error) {
		return h.engine.RecommendationsFor(key)
	}, false)
}
