// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Dataset  DatasetConfig  `koanf:"dataset"`
	Database DatabaseConfig `koanf:"database"`
	API      APIConfig      `koanf:"api"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// DatasetConfig selects where the tables come from.
//
// Source is one of csv, duckdb or mysql. The CSV paths are used by the csv
// source and by the duckdb source when database.import_csv is set. When a path
// does not exist and a URL is configured, the file is downloaded at startup.
type DatasetConfig struct {
	Source              string        `koanf:"source"`
	MoviesPath          string        `koanf:"movies_path"`
	RecommendationsPath string        `koanf:"recommendations_path"`
	MoviesURL           string        `koanf:"movies_url"`
	RecommendationsURL  string        `koanf:"recommendations_url"`
	DownloadTimeout     time.Duration `koanf:"download_timeout"`
}

// DatabaseConfig holds SQL source settings.
type DatabaseConfig struct {
	Driver    string `koanf:"driver"` // duckdb or mysql; defaults to dataset.source
	Path      string `koanf:"path"`   // DuckDB file, or :memory:
	DSN       string `koanf:"dsn"`    // MySQL DSN
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = DuckDB default

	MoviesTable          string `koanf:"movies_table"`
	RecommendationsTable string `koanf:"recommendations_table"` // empty = no recommendations
	RecommendationKey    string `koanf:"recommendation_key"`

	// ImportCSV loads dataset.movies_path and dataset.recommendations_path into
	// DuckDB tables before reading them.
	ImportCSV bool `koanf:"import_csv"`
}

// APIConfig holds response settings.
type APIConfig struct {
	ResponseFormat  string        `koanf:"response_format"` // json or text
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	MaxKeyLength    int           `koanf:"max_key_length"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s *ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether ENVIRONMENT is production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// SQLDriver returns the database driver, falling back to the dataset source.
func (c *Config) SQLDriver() string {
	if c.Database.Driver != "" {
		return c.Database.Driver
	}
	return c.Dataset.Source
}
