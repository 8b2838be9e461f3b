// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/cinelookup/internal/dataset"
	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/metrics"
	"github.com/tomtom215/cinelookup/internal/models"
)

// movieColumns is the column order of the movies SELECT. Every column is read
// as text and parsed with the same rules as the CSV loader.
var movieColumns = []string{
	"title",
	"release_year",
	"release_month",
	"release_day",
	"vote_average",
	"vote_count",
	"popularity",
	"cast",
	"director",
	"budget",
	"revenue",
	"return",
}

// quoteIdent quotes a table or column name for the driver.
func (db *DB) quoteIdent(name string) string {
	if db.driver == DriverMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// textCast converts a column to the driver's string type.
func (db *DB) textCast(col string) string {
	if db.driver == DriverMySQL {
		return "CAST(" + col + " AS CHAR)"
	}
	return "CAST(" + col + " AS VARCHAR)"
}

// sqlLiteral quotes a string literal. Used for file paths, which DuckDB table
// functions do not accept as bound parameters.
func sqlLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ImportCSV materialises the CSV files as DuckDB tables named by the
// configuration, replacing existing tables. All columns are imported as text.
// An empty recommendationsPath or recommendations table skips that table.
func (db *DB) ImportCSV(ctx context.Context, moviesPath, recommendationsPath string) error {
	if db.driver != DriverDuckDB {
		return fmt.Errorf("CSV import requires duckdb, not %s", db.driver)
	}

	if err := db.importFile(ctx, db.cfg.MoviesTable, moviesPath); err != nil {
		return err
	}
	if recommendationsPath == "" || db.cfg.RecommendationsTable == "" {
		return nil
	}
	return db.importFile(ctx, db.cfg.RecommendationsTable, recommendationsPath)
}

func (db *DB) importFile(ctx context.Context, table, path string) error {
	query := fmt.Sprintf(
		"CREATE OR REPLACE TABLE %s AS SELECT * FROM read_csv_auto(%s, header = true, all_varchar = true)",
		db.quoteIdent(table), sqlLiteral(path),
	)

	start := time.Now()
	_, err := db.conn.ExecContext(ctx, query)
	metrics.RecordDBQuery("import_csv", table, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to import %s into %s: %w", path, table, err)
	}

	logging.Info().Str("table", table).Str("path", path).Msg("CSV imported into DuckDB")
	return nil
}

// LoadTables reads both tables into memory.
func (db *DB) LoadTables(ctx context.Context) (*dataset.Tables, error) {
	start := time.Now()

	movies, err := db.loadMovies(ctx)
	if err != nil {
		return nil, err
	}

	var recs []models.RecommendationRecord
	if db.cfg.RecommendationsTable != "" {
		recs, err = db.loadRecommendations(ctx)
		if err != nil {
			return nil, err
		}
	}

	tables := dataset.NewTables(db.driver, movies, recs)
	metrics.RecordDatasetLoad(db.driver, time.Since(start), len(tables.Movies), len(tables.Recommendations))

	logging.Info().
		Str("driver", db.driver).
		Int("movies", len(tables.Movies)).
		Int("recommendations", len(tables.Recommendations)).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded from database")

	return tables, nil
}

func (db *DB) loadMovies(ctx context.Context) ([]models.MovieRecord, error) {
	cols := make([]string, len(movieColumns))
	for i, c := range movieColumns {
		cols[i] = db.textCast(db.quoteIdent(c))
	}
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(cols, ", "), db.quoteIdent(db.cfg.MoviesTable))

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("load_movies", db.cfg.MoviesTable, time.Since(start), err)
		return nil, fmt.Errorf("failed to query %s: %w", db.cfg.MoviesTable, err)
	}
	defer closeWithLog(rows, "rows")

	movies := make([]models.MovieRecord, 0, 1024)
	castFailures := 0
	for rows.Next() {
		var v [12]sql.NullString
		if err := rows.Scan(&v[0], &v[1], &v[2], &v[3], &v[4], &v[5], &v[6], &v[7], &v[8], &v[9], &v[10], &v[11]); err != nil {
			metrics.RecordDBQuery("load_movies", db.cfg.MoviesTable, time.Since(start), err)
			return nil, fmt.Errorf("failed to scan %s row: %w", db.cfg.MoviesTable, err)
		}

		rec, err := dataset.BuildMovie(&dataset.MovieFields{
			Title:        v[0].String,
			ReleaseYear:  dataset.ParseNullableInt(v[1].String),
			ReleaseMonth: dataset.ParseNullableInt(v[2].String),
			ReleaseDay:   dataset.ParseNullableInt(v[3].String),
			VoteAverage:  dataset.ParseNullableFloat(v[4].String),
			VoteCount:    dataset.ParseNullableInt(v[5].String),
			Popularity:   dataset.ParseNullableFloat(v[6].String),
			Cast:         v[7].String,
			Director:     v[8].String,
			Budget:       dataset.ParseNullableFloat(v[9].String),
			Revenue:      dataset.ParseNullableFloat(v[10].String),
			Return:       dataset.ParseNullableFloat(v[11].String),
		})
		if err != nil {
			castFailures++
			logging.Debug().Err(err).Str("title", rec.Title).Msg("Cast cell not decodable, treating as empty")
		}
		movies = append(movies, rec)
	}

	err = rows.Err()
	metrics.RecordDBQuery("load_movies", db.cfg.MoviesTable, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", db.cfg.MoviesTable, err)
	}

	if castFailures > 0 {
		logging.Warn().Int("rows", castFailures).Msg("Movies with undecodable cast cells")
	}
	return movies, nil
}

// loadRecommendations reads every column of the recommendations table. The
// key column holds the title; each later column holds one recommended title.
func (db *DB) loadRecommendations(ctx context.Context) ([]models.RecommendationRecord, error) {
	table := db.cfg.RecommendationsTable
	query := "SELECT * FROM " + db.quoteIdent(table)

	start := time.Now()
	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		metrics.RecordDBQuery("load_recommendations", table, time.Since(start), err)
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer closeWithLog(rows, "rows")

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", table, err)
	}

	keyIdx := -1
	for i, c := range columns {
		if c == db.cfg.RecommendationKey {
			keyIdx = i
			break
		}
	}
	if keyIdx < 0 {
		return nil, fmt.Errorf("table %s has no %q column", table, db.cfg.RecommendationKey)
	}

	values := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range values {
		dest[i] = &values[i]
	}
	record := make([]string, len(columns))

	recs := make([]models.RecommendationRecord, 0, 1024)
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			metrics.RecordDBQuery("load_recommendations", table, time.Since(start), err)
			return nil, fmt.Errorf("failed to scan %s row: %w", table, err)
		}
		for i := range values {
			record[i] = values[i].String
		}
		recs = append(recs, models.RecommendationRecord{
			Title:           record[keyIdx],
			Recommendations: dataset.TrailingValues(record, keyIdx),
		})
	}

	err = rows.Err()
	metrics.RecordDBQuery("load_recommendations", table, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}
	return recs, nil
}
