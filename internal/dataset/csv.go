// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jszwec/csvutil"

	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/metrics"
	"github.com/tomtom215/cinelookup/internal/models"
)

// DefaultRecommendationKey is the header of the key column in recommendations files.
const DefaultRecommendationKey = "title"

// ctxCheckInterval is how many rows are decoded between context checks.
const ctxCheckInterval = 1024

// movieRow maps the movies.csv header onto typed fields. Columns missing from
// the file decode as absent values; extra columns are ignored.
type movieRow struct {
	Title        string        `csv:"title"`
	ReleaseYear  NullableInt   `csv:"release_year"`
	ReleaseMonth NullableInt   `csv:"release_month"`
	ReleaseDay   NullableInt   `csv:"release_day"`
	VoteAverage  NullableFloat `csv:"vote_average"`
	VoteCount    NullableInt   `csv:"vote_count"`
	Popularity   NullableFloat `csv:"popularity"`
	Cast         string        `csv:"cast"`
	Director     string        `csv:"director"`
	Budget       NullableFloat `csv:"budget"`
	Revenue      NullableFloat `csv:"revenue"`
	Return       NullableFloat `csv:"return"`
}

func (r *movieRow) fields() *MovieFields {
	return &MovieFields{
		Title:        r.Title,
		ReleaseYear:  r.ReleaseYear,
		ReleaseMonth: r.ReleaseMonth,
		ReleaseDay:   r.ReleaseDay,
		VoteAverage:  r.VoteAverage,
		VoteCount:    r.VoteCount,
		Popularity:   r.Popularity,
		Cast:         r.Cast,
		Director:     r.Director,
		Budget:       r.Budget,
		Revenue:      r.Revenue,
		Return:       r.Return,
	}
}

// recommendationRow only names the key column; the recommended titles are read
// positionally from the raw record.
type recommendationRow struct {
	Title string `csv:"title"`
}

// LoadCSV reads both tables from local CSV files. An empty recommendationsPath
// yields an empty recommendations table.
func LoadCSV(ctx context.Context, moviesPath, recommendationsPath string) (*Tables, error) {
	start := time.Now()

	movies, err := readFile(moviesPath, func(r io.Reader) ([]models.MovieRecord, error) {
		return ReadMovies(ctx, r)
	})
	if err != nil {
		return nil, err
	}

	var recs []models.RecommendationRecord
	if recommendationsPath != "" {
		recs, err = readFile(recommendationsPath, func(r io.Reader) ([]models.RecommendationRecord, error) {
			return ReadRecommendations(ctx, r)
		})
		if err != nil {
			return nil, err
		}
	}

	tables := NewTables(SourceCSV, movies, recs)
	metrics.RecordDatasetLoad(SourceCSV, time.Since(start), len(tables.Movies), len(tables.Recommendations))

	logging.Info().
		Str("movies_path", moviesPath).
		Str("recommendations_path", recommendationsPath).
		Int("movies", len(tables.Movies)).
		Int("recommendations", len(tables.Recommendations)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded from CSV")

	return tables, nil
}

func readFile[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logging.Warn().Err(cerr).Str("path", path).Msg("Failed to close dataset file")
		}
	}()

	rows, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// ReadMovies decodes a movies table. Rows whose cast cell does not decode are
// kept with a nil cast.
func ReadMovies(ctx context.Context, r io.Reader) ([]models.MovieRecord, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("movies file is empty")
		}
		return nil, fmt.Errorf("failed to create CSV decoder for movies: %w", err)
	}

	movies := make([]models.MovieRecord, 0, 1024)
	castFailures := 0
	for i := 0; ; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var row movieRow
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode movies row %d: %w", i+1, err)
		}

		rec, err := BuildMovie(row.fields())
		if err != nil {
			castFailures++
			logging.Debug().Err(err).Str("title", rec.Title).Msg("Cast cell not decodable, treating as empty")
		}
		movies = append(movies, rec)
	}

	if castFailures > 0 {
		logging.Warn().Int("rows", castFailures).Msg("Movies with undecodable cast cells")
	}
	return movies, nil
}

// ReadRecommendations decodes a recommendations table. Every column after the
// key column holds one recommended title; empty cells are skipped.
func ReadRecommendations(ctx context.Context, r io.Reader) ([]models.RecommendationRecord, error) {
	dec, err := csvutil.NewDecoder(csv.NewReader(r))
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []models.RecommendationRecord{}, nil
		}
		return nil, fmt.Errorf("failed to create CSV decoder for recommendations: %w", err)
	}

	keyIdx := indexOf(dec.Header(), DefaultRecommendationKey)
	if keyIdx < 0 {
		return nil, fmt.Errorf("recommendations header has no %q column", DefaultRecommendationKey)
	}

	recs := make([]models.RecommendationRecord, 0, 1024)
	for i := 0; ; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var row recommendationRow
		if err := dec.Decode(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode recommendations row %d: %w", i+1, err)
		}

		recs = append(recs, models.RecommendationRecord{
			Title:           row.Title,
			Recommendations: TrailingValues(dec.Record(), keyIdx),
		})
	}
	return recs, nil
}

// TrailingValues returns the non-empty cells after position key, in order.
func TrailingValues(record []string, key int) []string {
	out := make([]string, 0, len(record))
	for i := key + 1; i < len(record); i++ {
		if v := strings.TrimSpace(record[i]); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}
	return -1
}
