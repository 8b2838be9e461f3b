// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package format

import (
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinelookup/internal/models"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"json", "JSON", " text "} {
		if _, err := Lookup(name); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}
	if _, err := Lookup("xml"); err == nil {
		t.Error("expected error for unknown format")
	}
	if Valid("yaml") {
		t.Error("Valid(yaml) = true")
	}
}

func TestJSONSuccess(t *testing.T) {
	t.Parallel()

	body, err := JSON{}.Success(models.MonthCount{Month: "Enero", Count: 5}, models.Metadata{Timestamp: time.Now()})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var resp struct {
		Status string            `json:"status"`
		Data   models.MonthCount `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Status != "success" || resp.Data.Month != "Enero" || resp.Data.Count != 5 {
		t.Errorf("unexpected response: %s", body)
	}
}

func TestJSONVotesOutcome(t *testing.T) {
	t.Parallel()

	outcome := models.VotesOutcome{Insufficient: &models.InsufficientVotes{
		Title:             "Jumanji",
		VoteCount:         1999,
		MinimumVotes:      models.MinimumVotes,
		InsufficientVotes: true,
		Message:           models.InsufficientVotesMessage,
	}}
	body, err := JSON{}.Success(outcome, models.Metadata{})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(string(body), `"insufficient_votes":true`) {
		t.Errorf("expected sentinel flag in body: %s", body)
	}

	outcome = models.VotesOutcome{Votes: &models.TitleVotes{Title: "Heat", ReleaseYear: 1995, VoteTotal: 2000, VoteAverage: 7.7}}
	body, err = JSON{}.Success(outcome, models.Metadata{})
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if !strings.Contains(string(body), `"vote_total":2000`) || strings.Contains(string(body), "insufficient") {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestJSONFailure(t *testing.T) {
	t.Parallel()

	body, err := JSON{}.Failure("NOT_FOUND", "title not found")
	if err != nil {
		t.Fatalf("Failure() error = %v", err)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if resp.Status != "error" || resp.Error == nil || resp.Error.Code != "NOT_FOUND" {
		t.Errorf("unexpected failure body: %s", body)
	}
}

func TestSentence(t *testing.T) {
	t.Parallel()

	mean := 4.5
	tests := []struct {
		name     string
		result   any
		expected string
	}{
		{
			name:     "month",
			result:   models.MonthCount{Month: "Enero", Count: 5912},
			expected: "5912 cantidad de películas fueron estrenadas en el mes de Enero",
		},
		{
			name:     "day",
			result:   models.DayCount{Day: "dos", DayNumber: 2, Count: 10},
			expected: "10 cantidad de películas fueron estrenadas en el día 2 (dos)",
		},
		{
			name:     "score",
			result:   models.TitleScore{Title: "Toy Story", ReleaseYear: 1995, Popularity: 21.95, VoteAverage: 7.7},
			expected: "La película Toy Story fue estrenada en el año 1995 con un score/popularidad de 21.95",
		},
		{
			name:     "votes",
			result:   models.VotesOutcome{Votes: &models.TitleVotes{Title: "Toy Story", ReleaseYear: 1995, VoteTotal: 5415, VoteAverage: 7.7}},
			expected: "La película Toy Story fue estrenada en el año 1995. La misma cuenta con un total de 5415 valoraciones, con un score promedio de 7.7",
		},
		{
			name:     "insufficient votes",
			result:   models.VotesOutcome{Insufficient: &models.InsufficientVotes{Title: "Jumanji"}},
			expected: models.InsufficientVotesMessage,
		},
		{
			name:     "actor",
			result:   models.ActorSummary{Actor: "Tom Hanks", Count: 2, ReturnTotal: 9, ReturnMean: &mean},
			expected: "El actor Tom Hanks ha participado en 2 filmaciones, el mismo ha conseguido un retorno de 9 con un promedio de 4.5 por filmación",
		},
		{
			name:     "actor without films",
			result:   models.ActorSummary{Actor: "Nadie"},
			expected: "El actor Nadie ha participado en 0 filmaciones, el mismo ha conseguido un retorno de 0 con un promedio de 0 por filmación",
		},
		{
			name:     "recommendations",
			result:   models.Recommendations{Title: "Toy Story", Recommendations: []string{"Toy Story 2", "A Bug's Life"}},
			expected: "Películas recomendadas para Toy Story:\nToy Story 2\nA Bug's Life",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sentence(tt.result)
			if err != nil {
				t.Fatalf("Sentence() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("Sentence() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSentenceDirector(t *testing.T) {
	t.Parallel()

	got, err := Sentence(models.DirectorSummary{
		Director:    "John Lasseter",
		ReturnTotal: 17.98,
		Titles:      []string{"Toy Story", "Toy Story 2"},
		Years:       []int{1995, 1999},
		Returns:     []float64{12.45, 5.53},
		Budgets:     []float64{30000000, 90000000},
		Revenues:    []float64{373554033, 497366869},
	})
	if err != nil {
		t.Fatalf("Sentence() error = %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 lines, got %q", got)
	}
	if !strings.Contains(lines[0], "John Lasseter") || !strings.Contains(lines[0], "17.98") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[1] != "Toy Story (1995): presupuesto 30000000, recaudación 373554033, retorno 12.45" {
		t.Errorf("unexpected film line %q", lines[1])
	}
}

func TestSentenceUnsupported(t *testing.T) {
	t.Parallel()

	if _, err := Sentence(42); err == nil {
		t.Error("expected error for unsupported result type")
	}
	if _, err := (Text{}).Success(struct{}{}, models.Metadata{}); err == nil {
		t.Error("expected error from Text.Success")
	}
}
