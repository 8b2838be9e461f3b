// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinelookup/internal/format"
	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/metrics"
	"github.com/tomtom215/cinelookup/internal/models"
	"github.com/tomtom215/cinelookup/internal/query"
	"github.com/tomtom215/cinelookup/internal/validation"
)

// defaultMaxKeyLength applies when the handler has no configuration.
const defaultMaxKeyLength = 200

// formatter picks the response formatter from the format query parameter,
// falling back to the configured default. An unknown name is answered with
// 400 in the default format and ok=false.
func (h *Handler) formatter(w http.ResponseWriter, r *http.Request) (format.Formatter, bool) {
	fallback := format.NameJSON
	if h.config != nil && h.config.API.ResponseFormat != "" {
		fallback = h.config.API.ResponseFormat
	}

	def, err := format.Lookup(fallback)
	if err != nil {
		def = format.JSON{}
	}

	name := r.URL.Query().Get("format")
	if name == "" {
		return def, true
	}

	f, err := format.Lookup(name)
	if err != nil {
		respondError(w, r, def, http.StatusBadRequest, ErrCodeInvalidFormat,
			fmt.Sprintf("format must be one of: %s, %s", format.NameJSON, format.NameText), nil)
		return nil, false
	}
	return f, true
}

// pathKey returns the named URL parameter, unescaped and validated.
func (h *Handler) pathKey(w http.ResponseWriter, r *http.Request, f format.Formatter, name string) (string, bool) {
	key := chi.URLParam(r, name)

	// chi matches against RawPath when the request path has escapes that
	// differ from the default encoding, so the parameter may still be escaped.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(key); err == nil {
			key = unescaped
		}
	}

	maxLen := defaultMaxKeyLength
	if h.config != nil && h.config.API.MaxKeyLength > 0 {
		maxLen = h.config.API.MaxKeyLength
	}

	if verr := validation.ValidateKey(name, key, maxLen); verr != nil {
		apiErr := verr.ToAPIError()
		respondError(w, r, f, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return "", false
	}
	return key, true
}

// respond renders result with f and writes it with ETag and Cache-Control
// headers. A matching If-None-Match is answered with 304.
func respond(w http.ResponseWriter, r *http.Request, f format.Formatter, status int, result any, meta models.Metadata) {
	body, err := f.Success(result, meta)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("format", f.Name()).Msg("Failed to render response")
		respondError(w, r, format.JSON{}, http.StatusInternalServerError, ErrCodeInternalError, "Failed to render response", nil)
		return
	}

	// The JSON envelope carries a timestamp, so the tag is computed over the
	// result alone to stay stable across identical queries.
	tagSource, err := format.JSON{}.Success(result, models.Metadata{})
	if err != nil {
		tagSource = body
	}
	etag := `"` + f.Name() + "-" + generateETag(tagSource) + `"`

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("ETag", etag)

	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	writeBody(w, r, status, body)
}

// respondError sends an error response in the requested format
func respondError(w http.ResponseWriter, r *http.Request, f format.Formatter, status int, code, message string, err error) {
	if err != nil {
		logging.Ctx(r.Context()).Error().
			Str("code", code).
			Str("error", logging.SanitizeValue(err.Error())).
			Msg("API Error")
	}

	body, ferr := f.Failure(code, message)
	if ferr != nil {
		f = format.JSON{}
		body, _ = f.Failure(code, message)
	}

	w.Header().Set("Content-Type", f.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	writeBody(w, r, status, body)
}

func writeBody(w http.ResponseWriter, r *http.Request, status int, body []byte) {
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write response")
	}
}

// respondQueryError maps engine errors to HTTP responses and records the
// outcome. UnknownKeyError and NotFoundError both become 404.
func respondQueryError(w http.ResponseWriter, r *http.Request, f format.Formatter, op string, err error) {
	var unknown *query.UnknownKeyError
	var notFound *query.NotFoundError

	switch {
	case errors.As(err, &unknown):
		metrics.RecordQueryOutcome(op, metrics.OutcomeUnknownKey)
		respondError(w, r, f, http.StatusNotFound, ErrCodeUnknownKey, unknownKeyMessage(unknown), nil)
	case errors.As(err, &notFound):
		metrics.RecordQueryOutcome(op, metrics.OutcomeNotFound)
		respondError(w, r, f, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(notFound), nil)
	default:
		metrics.RecordQueryOutcome(op, metrics.OutcomeError)
		respondError(w, r, f, http.StatusInternalServerError, ErrCodeInternalError, "Error interno del servidor", err)
	}
}

func unknownKeyMessage(e *query.UnknownKeyError) string {
	switch e.Kind {
	case query.KindMonth:
		return fmt.Sprintf("Mes desconocido: %s", e.Key)
	case query.KindDay:
		return fmt.Sprintf("Día desconocido: %s", e.Key)
	default:
		return fmt.Sprintf("Valor desconocido: %s", e.Key)
	}
}

func notFoundMessage(e *query.NotFoundError) string {
	switch e.Kind {
	case query.KindTitle:
		return fmt.Sprintf("No se encontró la película %s", e.Key)
	case query.KindDirector:
		return fmt.Sprintf("No se encontraron filmaciones del director %s", e.Key)
	case query.KindRecommendation:
		return fmt.Sprintf("No hay recomendaciones para la película %s", e.Key)
	default:
		return fmt.Sprintf("No se encontró %s", e.Key)
	}
}

// outcomeOf classifies a successful result for the query outcome metric.
func outcomeOf(result any) string {
	switch r := result.(type) {
	case models.VotesOutcome:
		if !r.Sufficient() {
			return metrics.OutcomeInsufficientVotes
		}
	case models.ActorSummary:
		if r.Count == 0 {
			return metrics.OutcomeEmpty
		}
	case models.Recommendations:
		if len(r.Recommendations) == 0 {
			return metrics.OutcomeEmpty
		}
	}
	return metrics.OutcomeFound
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// newMetadata stamps a response with the time spent since start.
func newMetadata(start time.Time, cached bool) models.Metadata {
	return models.Metadata{
		Timestamp:   time.Now(),
		QueryTimeMS: time.Since(start).Milliseconds(),
		Cached:      cached,
	}
}
