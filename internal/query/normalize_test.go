// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package query

import "testing"

func TestTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"toy story", "Toy Story"},
		{"TOY STORY 2", "Toy Story 2"},
		{"  jumanji  ", "Jumanji"},
		{"o'brien", "O'Brien"},
		{"spider-man", "Spider-Man"},
		{"2001: a space odyssey", "2001: A Space Odyssey"},
		{"pedro almodóvar", "Pedro Almodóvar"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := TitleCase(tt.input); got != tt.expected {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"enero":      "Enero",
		"SEPTIEMBRE": "Septiembre",
		" marzo ":    "Marzo",
		"":           "",
		"ñandú":      "Ñandú",
	}

	for input, expected := range tests {
		if got := Capitalize(input); got != expected {
			t.Errorf("Capitalize(%q) = %q, want %q", input, got, expected)
		}
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    float64
		expected float64
	}{
		{21.946943, 21.95},
		{1.005, 1.0},
		{-1.234, -1.23},
		{0, 0},
	}

	for _, tt := range tests {
		if got := round2(tt.input); got != tt.expected {
			t.Errorf("round2(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestLookupMaps(t *testing.T) {
	t.Parallel()

	if len(MonthNames) != 12 {
		t.Errorf("expected 12 months, got %d", len(MonthNames))
	}
	if len(DayNames) != 31 {
		t.Errorf("expected 31 days, got %d", len(DayNames))
	}

	seen := make(map[int]bool)
	for name, n := range DayNames {
		if n < 1 || n > 31 || seen[n] {
			t.Errorf("day %q maps to invalid or duplicate number %d", name, n)
		}
		seen[n] = true
	}
	for name, n := range MonthNames {
		if Capitalize(name) != name {
			t.Errorf("month key %q is not capitalised", name)
		}
		if n < 1 || n > 12 {
			t.Errorf("month %q maps to %d", name, n)
		}
	}
}
