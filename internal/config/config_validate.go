// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("SERVER_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

var validSources = map[string]bool{
	"csv":    true,
	"duckdb": true,
	"mysql":  true,
}

// validateDataset validates the dataset source and its files
func (c *Config) validateDataset() error {
	if !validSources[c.Dataset.Source] {
		return fmt.Errorf("DATASET_SOURCE must be one of: csv, duckdb, mysql")
	}

	if c.needsCSVFiles() && c.Dataset.MoviesPath == "" {
		return fmt.Errorf("MOVIES_CSV_PATH is required when DATASET_SOURCE=%s", c.Dataset.Source)
	}

	if err := validateDownloadURL(c.Dataset.MoviesURL, "MOVIES_CSV_URL"); err != nil {
		return err
	}
	if err := validateDownloadURL(c.Dataset.RecommendationsURL, "RECOMMENDATIONS_CSV_URL"); err != nil {
		return err
	}

	if c.Dataset.DownloadTimeout <= 0 {
		return fmt.Errorf("DOWNLOAD_TIMEOUT must be positive")
	}
	return nil
}

// needsCSVFiles reports whether startup reads the CSV files.
func (c *Config) needsCSVFiles() bool {
	return c.Dataset.Source == "csv" || (c.Dataset.Source == "duckdb" && c.Database.ImportCSV)
}

// NeedsCSVFiles reports whether startup reads the configured CSV files.
func (c *Config) NeedsCSVFiles() bool {
	return c.needsCSVFiles()
}

// validateDatabase validates SQL source settings (only for SQL sources)
func (c *Config) validateDatabase() error {
	if c.Dataset.Source == "csv" {
		return nil
	}

	driver := c.SQLDriver()
	if driver != c.Dataset.Source {
		return fmt.Errorf("DATABASE_DRIVER=%s does not match DATASET_SOURCE=%s", driver, c.Dataset.Source)
	}

	switch driver {
	case "duckdb":
		if c.Database.Path == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATASET_SOURCE=duckdb (use :memory: for an in-memory database)")
		}
		if c.Database.Threads < 0 {
			return fmt.Errorf("DUCKDB_THREADS must not be negative")
		}
	case "mysql":
		if c.Database.DSN == "" {
			return fmt.Errorf("MYSQL_DSN is required when DATASET_SOURCE=mysql")
		}
		if c.Database.ImportCSV {
			return fmt.Errorf("DUCKDB_IMPORT_CSV is only supported with DATASET_SOURCE=duckdb")
		}
	}

	if err := validateIdentifier(c.Database.MoviesTable, "MOVIES_TABLE", true); err != nil {
		return err
	}
	if err := validateIdentifier(c.Database.RecommendationsTable, "RECOMMENDATIONS_TABLE", false); err != nil {
		return err
	}
	return validateIdentifier(c.Database.RecommendationKey, "RECOMMENDATIONS_KEY_COLUMN", true)
}

// validateIdentifier rejects table and column names that could not be quoted
// safely. Names are always quoted in SQL, so only quote characters and control
// characters are refused.
func validateIdentifier(name, envVar string, required bool) error {
	if name == "" {
		if required {
			return fmt.Errorf("%s is required", envVar)
		}
		return nil
	}
	if len(name) > 64 {
		return fmt.Errorf("%s must be at most 64 characters", envVar)
	}
	if strings.ContainsAny(name, "\"`'\x00\n\r\t") {
		return fmt.Errorf("%s contains invalid characters", envVar)
	}
	return nil
}

var validResponseFormats = map[string]bool{
	"json": true,
	"text": true,
}

// validateAPI validates response settings
func (c *Config) validateAPI() error {
	if !validResponseFormats[c.API.ResponseFormat] {
		return fmt.Errorf("RESPONSE_FORMAT must be one of: json, text")
	}
	if c.API.CacheTTL < 0 {
		return fmt.Errorf("CACHE_TTL must not be negative (0 disables the response cache)")
	}
	if c.API.CacheMaxEntries < 0 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must not be negative")
	}
	if c.API.MaxKeyLength < 1 || c.API.MaxKeyLength > 1000 {
		return fmt.Errorf("MAX_KEY_LENGTH must be between 1 and 1000")
	}
	return nil
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	return c.validateRateLimits()
}

// validateRateLimits validates rate limiting bounds when rate limiting is enabled
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any origin is allowed.
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates the log level and format
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
