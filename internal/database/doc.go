// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package database reads the movies and recommendations tables from a SQL
// database, as an alternative to the CSV loader in package dataset.
//
// Two drivers are supported:
//   - duckdb (github.com/duckdb/duckdb-go/v2): a file or :memory:. ImportCSV
//     can materialise the CSV files into DuckDB with read_csv_auto first.
//   - mysql (github.com/go-sql-driver/mysql): an existing server holding the
//     tables.
//
// Table and column names come from configuration and are always quoted for the
// target driver. Every movie column is read as text and parsed with the CSV
// loader's rules, so both sources produce identical records.
//
// Usage:
//
//	db, err := database.Open(ctx, cfg.SQLDriver(), &cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	tables, err := db.LoadTables(ctx)
//
// The connection is only needed during startup. The tables are served from
// memory afterwards.
package database
