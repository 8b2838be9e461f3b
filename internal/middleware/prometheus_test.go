// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinelookup/internal/metrics"
)

func TestPrometheusMetrics_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/score_titulo/{title}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/score_titulo/{title}", "200")
	before := testutil.ToFloat64(counter)

	for _, title := range []string{"Toy%20Story", "Jumanji", "Heat"} {
		req := httptest.NewRequest(http.MethodGet, "/score_titulo/"+title, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("expected 3 requests recorded under the route pattern, got %v", got)
	}
}

func TestPrometheusMetrics_CapturesStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/get_director/{director}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.WriteHeader(http.StatusInternalServerError) // superfluous, ignored
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/get_director/{director}", "404")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/get_director/Nobody", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected one 404 recorded, got %v", got)
	}
}

func TestPrometheusMetrics_WithoutRouter(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	counter := metrics.APIRequestsTotal.WithLabelValues("POST", unmatchedRoute, "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/anything/at/all", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected request recorded as %q, got %v", unmatchedRoute, got)
	}
	if active := testutil.ToFloat64(metrics.APIActiveRequests); active != 0 {
		t.Errorf("active requests should return to 0, got %v", active)
	}
}
