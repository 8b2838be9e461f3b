// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/tomtom215/cinelookup/internal/logging"
)

type capturedIDs struct {
	requestID     string
	chiRequestID  string
	correlationID string
}

func serveWithRequestID(t *testing.T, incoming string) (*httptest.ResponseRecorder, capturedIDs) {
	t.Helper()

	var got capturedIDs
	handler := RequestIDWithLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.requestID = logging.RequestIDFromContext(r.Context())
		got.chiRequestID = chimiddleware.GetReqID(r.Context())
		got.correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/cantidad_filmaciones_mes/enero", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, got
}

func TestRequestIDWithLogging_GeneratesNewID(t *testing.T) {
	t.Parallel()

	rec, got := serveWithRequestID(t, "")

	responseID := rec.Header().Get(RequestIDHeader)
	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID is not a valid UUID: %q", responseID)
	}
	if got.requestID != responseID {
		t.Errorf("logging context ID %q does not match header %q", got.requestID, responseID)
	}
	if got.chiRequestID != responseID {
		t.Errorf("chi request ID %q does not match header %q", got.chiRequestID, responseID)
	}
	if got.correlationID == "" {
		t.Error("expected a correlation ID in context")
	}
}

func TestRequestIDWithLogging_PreservesExistingID(t *testing.T) {
	t.Parallel()

	rec, got := serveWithRequestID(t, "proxy-abc-123")

	if rec.Header().Get(RequestIDHeader) != "proxy-abc-123" {
		t.Errorf("expected incoming ID to be echoed, got %q", rec.Header().Get(RequestIDHeader))
	}
	if got.requestID != "proxy-abc-123" {
		t.Errorf("expected incoming ID in context, got %q", got.requestID)
	}
}

func TestRequestIDWithLogging_SanitisesIncomingID(t *testing.T) {
	t.Parallel()

	_, got := serveWithRequestID(t, "abc\x01def")
	if strings.ContainsRune(got.requestID, '\x01') {
		t.Errorf("control characters should be stripped, got %q", got.requestID)
	}

	_, got = serveWithRequestID(t, strings.Repeat("x", 150))
	if _, err := uuid.Parse(got.requestID); err != nil {
		t.Errorf("oversized ID should be replaced by a UUID, got %q", got.requestID)
	}
}

func TestRequestIDWithLogging_UniquePerRequest(t *testing.T) {
	t.Parallel()

	_, first := serveWithRequestID(t, "")
	_, second := serveWithRequestID(t, "")
	if first.requestID == second.requestID {
		t.Error("expected distinct request IDs")
	}
	if first.correlationID == second.correlationID {
		t.Error("expected distinct correlation IDs")
	}
}
