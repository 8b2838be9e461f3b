// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tomtom215/cinelookup/internal/config"
)

// testDBSemaphore serializes DuckDB tests; concurrent CGO connections can hang
// under CI resource pressure.
var testDBSemaphore = make(chan struct{}, 1)

func testConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Path:                 ":memory:",
		MaxMemory:            "256MB",
		Threads:              1,
		MoviesTable:          "movies",
		RecommendationsTable: "recommendations",
		RecommendationKey:    "title",
	}
}

// setupTestDB opens an in-memory DuckDB database held for the whole test.
func setupTestDB(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := Open(ctx, DriverDuckDB, cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return db
}

func mustExec(t *testing.T, db *DB, query string) {
	t.Helper()
	if _, err := db.Conn().ExecContext(context.Background(), query); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}

func seedTables(t *testing.T, db *DB) {
	t.Helper()

	mustExec(t, db, `CREATE TABLE movies (
		title VARCHAR, release_year INTEGER, release_month INTEGER, release_day INTEGER,
		vote_average DOUBLE, vote_count INTEGER, popularity DOUBLE, "cast" VARCHAR,
		director VARCHAR, budget DOUBLE, revenue DOUBLE, "return" DOUBLE)`)
	mustExec(t, db, `INSERT INTO movies VALUES
		('Toy Story', 1995, 10, 0, 7.7, 5415, 21.946943, '["Tom Hanks", "Tim Allen"]', 'John Lasseter', 30000000, 373554033, 12.45),
		('Jumanji', 1995, 12, 4, 6.9, 2413, 17.015539, '[''Robin Williams'']', 'Joe Johnston', 65000000, 262797249, 4.04),
		('Broken', NULL, 13, NULL, NULL, NULL, NULL, 'not a list', NULL, NULL, NULL, NULL)`)

	mustExec(t, db, `CREATE TABLE recommendations (title VARCHAR, r1 VARCHAR, r2 VARCHAR, r3 VARCHAR)`)
	mustExec(t, db, `INSERT INTO recommendations VALUES
		('Toy Story', 'Toy Story 2', 'A Bug''s Life', NULL),
		('Jumanji', 'Zathura', '', NULL)`)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	t.Parallel()

	if _, err := Open(context.Background(), "sqlite", testConfig()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestOpenMySQLInvalidDSN(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.DSN = "not a dsn"
	if _, err := Open(context.Background(), DriverMySQL, cfg); err == nil {
		t.Fatal("expected error for invalid DSN")
	}
}

func TestLoadTables(t *testing.T) {
	db := setupTestDB(t, testConfig())
	seedTables(t, db)

	tables, err := db.LoadTables(context.Background())
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}

	if tables.Source != DriverDuckDB {
		t.Errorf("Source = %q, want duckdb", tables.Source)
	}
	if len(tables.Movies) != 3 {
		t.Fatalf("expected 3 movies, got %d", len(tables.Movies))
	}

	toy := tables.Movies[0]
	if toy.Title != "Toy Story" || toy.ReleaseYear != 1995 || toy.ReleaseMonth != 10 {
		t.Errorf("unexpected first movie: %+v", toy)
	}
	if toy.ReleaseDay != 0 {
		t.Errorf("day 0 should normalise to absent, got %d", toy.ReleaseDay)
	}
	if toy.VoteCount != 5415 || toy.Popularity != 21.946943 || toy.Return != 12.45 {
		t.Errorf("unexpected numeric fields: %+v", toy)
	}
	if len(toy.Cast) != 2 || toy.Cast[0] != "Tom Hanks" || toy.Cast[1] != "Tim Allen" {
		t.Errorf("unexpected cast: %v", toy.Cast)
	}

	if got := tables.Movies[1].Cast; len(got) != 1 || got[0] != "Robin Williams" {
		t.Errorf("single-quoted cast not decoded: %v", got)
	}

	broken := tables.Movies[2]
	if broken.Cast != nil || broken.ReleaseMonth != 0 || broken.Director != "" {
		t.Errorf("malformed row should load with absent values: %+v", broken)
	}

	if len(tables.Recommendations) != 2 {
		t.Fatalf("expected 2 recommendation rows, got %d", len(tables.Recommendations))
	}
	first := tables.Recommendations[0]
	if first.Title != "Toy Story" || len(first.Recommendations) != 2 || first.Recommendations[1] != "A Bug's Life" {
		t.Errorf("unexpected recommendations: %+v", first)
	}
	if got := tables.Recommendations[1].Recommendations; len(got) != 1 || got[0] != "Zathura" {
		t.Errorf("empty cells should be skipped, got %v", got)
	}
}

func TestLoadTablesWithoutRecommendations(t *testing.T) {
	cfg := testConfig()
	cfg.RecommendationsTable = ""
	db := setupTestDB(t, cfg)
	seedTables(t, db)

	tables, err := db.LoadTables(context.Background())
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	if tables.Recommendations == nil || len(tables.Recommendations) != 0 {
		t.Errorf("expected empty non-nil recommendations, got %v", tables.Recommendations)
	}
}

func TestLoadTablesCustomKeyColumn(t *testing.T) {
	cfg := testConfig()
	cfg.RecommendationKey = "name"
	db := setupTestDB(t, cfg)
	seedTables(t, db)

	_, err := db.LoadTables(context.Background())
	if err == nil {
		t.Fatal("expected error when key column is missing")
	}

	mustExec(t, db, `CREATE OR REPLACE TABLE recommendations (rank INTEGER, name VARCHAR, r1 VARCHAR)`)
	mustExec(t, db, `INSERT INTO recommendations VALUES (1, 'Heat', 'Ronin')`)

	tables, err := db.LoadTables(context.Background())
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	rec := tables.Recommendations[0]
	if rec.Title != "Heat" || len(rec.Recommendations) != 1 || rec.Recommendations[0] != "Ronin" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestLoadTablesMissingTable(t *testing.T) {
	db := setupTestDB(t, testConfig())

	if _, err := db.LoadTables(context.Background()); err == nil {
		t.Fatal("expected error for missing movies table")
	}
}

func TestImportCSV(t *testing.T) {
	dir := t.TempDir()
	moviesPath := filepath.Join(dir, "movie's.csv")
	recsPath := filepath.Join(dir, "recommendations.csv")

	movies := "title,release_year,release_month,release_day,vote_average,vote_count,popularity,cast,director,budget,revenue,return\n" +
		"Heat,1995,12,15,7.7,1886,17.924927,\"['Al Pacino', 'Robert De Niro']\",Michael Mann,60000000,187436818,3.12\n" +
		"Sabrina,1995,12,,6.2,141,6.677277,[],Sydney Pollack,58000000,,0\n"
	if err := os.WriteFile(moviesPath, []byte(movies), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(recsPath, []byte("title,r1,r2\nHeat,Ronin,Collateral\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	db := setupTestDB(t, testConfig())
	if err := db.ImportCSV(context.Background(), moviesPath, recsPath); err != nil {
		t.Fatalf("ImportCSV() error = %v", err)
	}

	tables, err := db.LoadTables(context.Background())
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}
	if len(tables.Movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(tables.Movies))
	}
	heat := tables.Movies[0]
	if heat.Title != "Heat" || heat.ReleaseDay != 15 || len(heat.Cast) != 2 {
		t.Errorf("unexpected imported movie: %+v", heat)
	}
	sabrina := tables.Movies[1]
	if sabrina.ReleaseDay != 0 || sabrina.Revenue != 0 || sabrina.Cast == nil || len(sabrina.Cast) != 0 {
		t.Errorf("unexpected imported movie: %+v", sabrina)
	}
	if len(tables.Recommendations) != 1 || len(tables.Recommendations[0].Recommendations) != 2 {
		t.Errorf("unexpected recommendations: %+v", tables.Recommendations)
	}
}

func TestQuoteIdent(t *testing.T) {
	t.Parallel()

	duck := &DB{driver: DriverDuckDB}
	my := &DB{driver: DriverMySQL}

	tests := []struct {
		db   *DB
		in   string
		want string
	}{
		{duck, "movies", `"movies"`},
		{duck, `we"ird`, `"we""ird"`},
		{my, "movies", "`movies`"},
		{my, "we`ird", "`we``ird`"},
	}
	for _, tt := range tests {
		if got := tt.db.quoteIdent(tt.in); got != tt.want {
			t.Errorf("quoteIdent(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}

	if got := sqlLiteral("/data/movie's.csv"); got != "'/data/movie''s.csv'" {
		t.Errorf("sqlLiteral() = %s", got)
	}
}

func TestImportCSVRequiresDuckDB(t *testing.T) {
	t.Parallel()

	db := &DB{driver: DriverMySQL, cfg: testConfig()}
	if err := db.ImportCSV(context.Background(), "a.csv", "b.csv"); err == nil {
		t.Fatal("expected error for mysql")
	}
}
