// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/go-sql-driver/mysql"

	"github.com/tomtom215/cinelookup/internal/config"
	"github.com/tomtom215/cinelookup/internal/logging"
)

// Supported drivers.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
)

// memoryPath selects an in-memory DuckDB database.
const memoryPath = ":memory:"

// mysqlDialTimeout applies when the DSN sets no timeout.
const mysqlDialTimeout = 10 * time.Second

// DB wraps a SQL connection pool holding the movies and recommendations tables.
type DB struct {
	conn   *sql.DB
	driver string
	cfg    *config.DatabaseConfig
}

// Open connects to the configured database and verifies the connection.
func Open(ctx context.Context, driver string, cfg *config.DatabaseConfig) (*DB, error) {
	var (
		conn *sql.DB
		err  error
	)

	switch driver {
	case DriverDuckDB:
		conn, err = openDuckDB(cfg)
	case DriverMySQL:
		conn, err = openMySQL(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	db := &DB{conn: conn, driver: driver, cfg: cfg}
	db.configureConnectionPool()

	pingCtx, cancel := ensureContext(ctx)
	defer cancel()
	if err := db.Ping(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to connect to %s: %w", driver, err)
	}

	logging.Info().
		Str("driver", driver).
		Str("target", db.target()).
		Msg("Database connected")

	return db, nil
}

func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = memoryPath
	}

	// Ensure parent directory exists for database file
	if path != memoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	connStr := fmt.Sprintf("%s?threads=%d", path, numThreads)
	if cfg.MaxMemory != "" {
		connStr += "&max_memory=" + cfg.MaxMemory
	}

	conn, err := sql.Open(DriverDuckDB, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb database: %w", err)
	}
	return conn, nil
}

func openMySQL(cfg *config.DatabaseConfig) (*sql.DB, error) {
	mcfg, err := mysql.ParseDSN(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	if mcfg.Timeout == 0 {
		mcfg.Timeout = mysqlDialTimeout
	}

	connector, err := mysql.NewConnector(mcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL connector: %w", err)
	}
	return sql.OpenDB(connector), nil
}

// configureConnectionPool sets connection pool parameters. The tables are
// read once at startup, so the pool stays small.
func (db *DB) configureConnectionPool() {
	db.conn.SetMaxOpenConns(runtime.NumCPU())
	db.conn.SetMaxIdleConns(2)
	db.conn.SetConnMaxLifetime(time.Hour)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)
}

// target describes the database for logs without exposing credentials.
func (db *DB) target() string {
	if db.driver == DriverMySQL {
		return logging.SanitizeDSN(db.cfg.DSN)
	}
	if db.cfg.Path == "" {
		return memoryPath
	}
	return db.cfg.Path
}

// Driver returns the driver name.
func (db *DB) Driver() string {
	return db.driver
}

// Conn returns the underlying SQL database connection.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Ping checks if the database connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// Close closes the connection pool. File-backed DuckDB databases are
// checkpointed first so the WAL is flushed.
func (db *DB) Close() error {
	if db.conn == nil {
		return nil
	}

	if db.driver == DriverDuckDB && db.cfg.Path != "" && db.cfg.Path != memoryPath {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}

// ensureContext adds a 30-second timeout to contexts without a deadline.
func ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		return context.WithTimeout(context.Background(), 30*time.Second)
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, 30*time.Second)
	}

	return ctx, func() {}
}
