// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package dataset

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecodeCast(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"single quoted", "['Tom Hanks', 'Tim Allen']", []string{"Tom Hanks", "Tim Allen"}},
		{"double quoted apostrophe", `["Bill O'Reilly", 'Annie Potts']`, []string{"Bill O'Reilly", "Annie Potts"}},
		{"escaped quote", `['Bill O\'Reilly']`, []string{"Bill O'Reilly"}},
		{"escaped backslash", `['A\\B']`, []string{`A\B`}},
		{"unknown escape kept", `['A\qB']`, []string{`A\qB`}},
		{"accents", "['Gael García Bernal']", []string{"Gael García Bernal"}},
		{"surrounding whitespace", "  [ 'A' ,'B' ]  ", []string{"A", "B"}},
		{"trailing comma", "['A', 'B',]", []string{"A", "B"}},
		{"empty list", "[]", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeCast(tt.input)
			if err != nil {
				t.Fatalf("DecodeCast(%q) error = %v", tt.input, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("DecodeCast(%q) = %#v, want %#v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeCastEmptyListIsNotNil(t *testing.T) {
	t.Parallel()

	got, err := DecodeCast("[]")
	if err != nil {
		t.Fatalf("DecodeCast() error = %v", err)
	}
	if got == nil {
		t.Error("expected non-nil empty slice for []")
	}
}

func TestDecodeCastNullMarkers(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "None", "nan", "NaN", "null", "   "} {
		got, err := DecodeCast(input)
		if err != nil {
			t.Errorf("DecodeCast(%q) error = %v, want nil", input, err)
		}
		if got != nil {
			t.Errorf("DecodeCast(%q) = %#v, want nil", input, got)
		}
	}
}

func TestDecodeCastMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"'Tom Hanks'",
		"{'a': 1}",
		"['Tom Hanks'",
		"['Tom Hanks",
		"[1, 2]",
		"['A' 'B']",
		"['A'] extra",
		`['A\`,
	}

	for _, input := range inputs {
		_, err := DecodeCast(input)
		if err == nil {
			t.Errorf("DecodeCast(%q) expected error", input)
			continue
		}
		var decodeErr *DecodeError
		if !errors.As(err, &decodeErr) {
			t.Errorf("DecodeCast(%q) error type = %T, want *DecodeError", input, err)
		}
	}
}
