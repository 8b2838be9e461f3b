// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package main is the entry point for the Cinelookup server.
//
// Cinelookup loads a movies table and a recommendations table into memory at
// startup and answers Spanish-language lookup queries over HTTP.
//
// # Startup
//
//  1. Configuration: defaults, optional config.yaml, optional .env, then
//     environment variables (Koanf v2)
//  2. Logging: zerolog initialised from LOG_LEVEL and LOG_FORMAT
//  3. Dataset files: downloaded from MOVIES_CSV_URL and RECOMMENDATIONS_CSV_URL when
//     the local paths are missing
//  4. Tables: read from CSV, DuckDB or MySQL according to DATASET_SOURCE
//  5. Engine, response cache, handlers and router
//  6. Supervisor tree: cache janitor and HTTP server
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server drains
// in-flight requests for SHUTDOWN_TIMEOUT and services that outlive it are
// logged.
//
// # Example Usage
//
// CSV files fetched on first start:
//
//	export MOVIES_CSV_PATH=data/movies.csv
//	export MOVIES_CSV_URL=https://example.com/movies.csv
//	export RECOMMENDATIONS_CSV_PATH=data/recommendations.csv
//	./cinelookup
//
// DuckDB with the CSV files imported into tables:
//
//	export DATASET_SOURCE=duckdb
//	export DUCKDB_PATH=data/cinelookup.duckdb
//	export DUCKDB_IMPORT_CSV=true
//	./cinelookup
//
// Existing MySQL tables:
//
//	export DATASET_SOURCE=mysql
//	export MYSQL_DSN='user:pass@tcp(db:3306)/movies?parseTime=true'
//	./cinelookup
package main
