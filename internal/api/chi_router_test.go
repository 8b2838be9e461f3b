// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRouterRoutes(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	routes := []string{
		"/cantidad_filmaciones_mes/Enero",
		"/cantidad_filmaciones_dia/uno",
		"/score_titulo/Toy%20Story",
		"/votos_titulo/Toy%20Story",
		"/get_actor/Tim%20Allen",
		"/get_director/Joe%20Johnston",
		"/recomendacion/Toy%20Story",
		"/health",
		"/health/live",
		"/health/ready",
		"/metrics",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			w := doRequest(t, srv, route)
			if w.Code != http.StatusOK {
				t.Errorf("GET %s: status = %d, want 200: %s", route, w.Code, w.Body.String())
			}
		})
	}
}

func TestRouterRequestID(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	w := doRequest(t, srv, "/health")
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected generated X-Request-ID")
	}

	w = doRequest(t, srv, "/health", "X-Request-ID", "client-id-123")
	if got := w.Header().Get("X-Request-ID"); got != "client-id-123" {
		t.Errorf("X-Request-ID = %q, want client-id-123", got)
	}
}

func TestRouterNotFound(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	w := doRequest(t, srv, "/api/v1/unknown")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	resp, _ := decodeResponse(t, w)
	if resp.Error == nil || resp.Error.Code != ErrCodeNotFound {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/score_titulo/Toy%20Story", strings.NewReader("{}"))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
	resp, _ := decodeResponse(t, w)
	if resp.Error == nil || resp.Error.Code != ErrCodeMethodNotAllowed {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestRouterSecurityHeaders(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	w := doRequest(t, srv, "/get_director/John%20Lasseter")
	if w.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected security headers on query routes")
	}
}

func TestRouterCompression(t *testing.T) {
	t.Parallel()
	_, srv := setupTestServer(t)

	w := doRequest(t, srv, "/get_director/John%20Lasseter", "Accept-Encoding", "gzip")
	if w.Header().Get("Content-Encoding") != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", w.Header().Get("Content-Encoding"))
	}
}

func TestRouterNilConfig(t *testing.T) {
	t.Parallel()

	srv := NewRouter(NewHandler(testEngine(), nil, nil), nil).Setup()
	w := doRequest(t, srv, "/cantidad_filmaciones_mes/Octubre")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
