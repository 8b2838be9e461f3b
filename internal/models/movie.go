// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package models

// MovieRecord is one row of the movies table.
//
// ReleaseMonth and ReleaseDay are 0 when the source value was missing or out of
// range. Cast is nil when the source cell was null or did not decode to a list.
type MovieRecord struct {
	Title        string   `json:"title"`
	ReleaseYear  int      `json:"release_year"`
	ReleaseMonth int      `json:"release_month"`
	ReleaseDay   int      `json:"release_day"`
	VoteAverage  float64  `json:"vote_average"`
	VoteCount    int      `json:"vote_count"`
	Popularity   float64  `json:"popularity"`
	Cast         []string `json:"cast"`
	Director     string   `json:"director"`
	Budget       float64  `json:"budget"`
	Revenue      float64  `json:"revenue"`
	Return       float64  `json:"return"`
}

// HasMonth reports whether the release month is a valid calendar month.
func (m *MovieRecord) HasMonth() bool {
	return m.ReleaseMonth >= 1 && m.ReleaseMonth <= 12
}

// HasDay reports whether the release day is a valid day of the month.
func (m *MovieRecord) HasDay() bool {
	return m.ReleaseDay >= 1 && m.ReleaseDay <= 31
}

// InCast reports whether name appears verbatim in the decoded cast list.
func (m *MovieRecord) InCast(name string) bool {
	for _, member := range m.Cast {
		if member == name {
			return true
		}
	}
	return false
}

// RecommendationRecord is one row of the recommendations table: a key title
// followed by the recommended titles in column order.
type RecommendationRecord struct {
	Title           string   `json:"title"`
	Recommendations []string `json:"recommendations"`
}
