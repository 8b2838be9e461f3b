// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package dataset

import (
	"math"
	"strconv"
	"strings"
)

// NullableInt is an integer cell that may be empty. It accepts float-formatted
// integers such as "1995.0", which dataframe exports write when a column has gaps.
// Unparseable cells are treated as absent.
type NullableInt struct {
	V     int
	Valid bool
}

// Value returns the integer or 0 when absent.
func (n NullableInt) Value() int {
	if !n.Valid {
		return 0
	}
	return n.V
}

// UnmarshalCSV implements csvutil.Unmarshaler.
func (n *NullableInt) UnmarshalCSV(data []byte) error {
	*n = ParseNullableInt(string(data))
	return nil
}

// ParseNullableInt parses s leniently.
func ParseNullableInt(s string) NullableInt {
	s = strings.TrimSpace(s)
	if isNullCell(s) {
		return NullableInt{}
	}
	if v, err := strconv.Atoi(s); err == nil {
		return NullableInt{V: v, Valid: true}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return NullableInt{}
	}
	return NullableInt{V: int(f), Valid: true}
}

// NullableFloat is a float cell that may be empty. Non-finite values are absent.
type NullableFloat struct {
	V     float64
	Valid bool
}

// Value returns the float or 0 when absent.
func (n NullableFloat) Value() float64 {
	if !n.Valid {
		return 0
	}
	return finite(n.V)
}

// UnmarshalCSV implements csvutil.Unmarshaler.
func (n *NullableFloat) UnmarshalCSV(data []byte) error {
	*n = ParseNullableFloat(string(data))
	return nil
}

// ParseNullableFloat parses s leniently.
func ParseNullableFloat(s string) NullableFloat {
	s = strings.TrimSpace(s)
	if isNullCell(s) {
		return NullableFloat{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return NullableFloat{}
	}
	return NullableFloat{V: f, Valid: true}
}

func isNullCell(s string) bool {
	switch s {
	case "", "nan", "NaN", "None", "null", "NULL":
		return true
	}
	return false
}
