// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package dataset loads the movies and recommendations tables into memory.
//
// Tables are built once at startup and never mutated afterwards, so a *Tables
// value can be shared by any number of request goroutines without locking.
package dataset

import (
	"math"
	"time"

	"github.com/tomtom215/cinelookup/internal/models"
)

// Source names accepted by the configuration.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
	SourceMySQL  = "mysql"
)

// Tables holds the immutable in-memory dataset.
type Tables struct {
	Movies          []models.MovieRecord
	Recommendations []models.RecommendationRecord
	Source          string
	LoadedAt        time.Time
}

// NewTables wraps already-built rows. Used by SQL sources and tests.
func NewTables(source string, movies []models.MovieRecord, recs []models.RecommendationRecord) *Tables {
	if movies == nil {
		movies = []models.MovieRecord{}
	}
	if recs == nil {
		recs = []models.RecommendationRecord{}
	}
	return &Tables{
		Movies:          movies,
		Recommendations: recs,
		Source:          source,
		LoadedAt:        time.Now(),
	}
}

// MovieFields is the column set of a movie row before normalisation. SQL and CSV
// sources both build one and hand it to BuildMovie.
type MovieFields struct {
	Title        string
	ReleaseYear  NullableInt
	ReleaseMonth NullableInt
	ReleaseDay   NullableInt
	VoteAverage  NullableFloat
	VoteCount    NullableInt
	Popularity   NullableFloat
	Cast         string
	Director     string
	Budget       NullableFloat
	Revenue      NullableFloat
	Return       NullableFloat
}

// BuildMovie normalises raw fields into a MovieRecord. Out-of-range month and
// day values become 0. A cast cell that fails to decode is returned as the
// error alongside a record with a nil cast, so callers can count and skip it.
func BuildMovie(f *MovieFields) (models.MovieRecord, error) {
	rec := models.MovieRecord{
		Title:        f.Title,
		ReleaseYear:  f.ReleaseYear.Value(),
		ReleaseMonth: inRange(f.ReleaseMonth.Value(), 1, 12),
		ReleaseDay:   inRange(f.ReleaseDay.Value(), 1, 31),
		VoteAverage:  f.VoteAverage.Value(),
		VoteCount:    f.VoteCount.Value(),
		Popularity:   f.Popularity.Value(),
		Director:     f.Director,
		Budget:       f.Budget.Value(),
		Revenue:      f.Revenue.Value(),
		Return:       f.Return.Value(),
	}

	cast, err := DecodeCast(f.Cast)
	if err != nil {
		return rec, err
	}
	rec.Cast = cast
	return rec, nil
}

func inRange(v, lo, hi int) int {
	if v < lo || v > hi {
		return 0
	}
	return v
}

// finite maps NaN and infinities to 0.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
