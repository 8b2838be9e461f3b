// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/cinelookup/config.yaml",
	"/etc/cinelookup/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// EnvFileEnvVar names the dotenv file loaded before the environment layer.
const EnvFileEnvVar = "ENV_FILE"

// DefaultEnvFile is loaded when ENV_FILE is unset. A missing file is ignored.
const DefaultEnvFile = ".env"

// defaultConfig returns a Config with all default values. Defaults are applied
// first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Dataset: DatasetConfig{
			Source:              "csv",
			MoviesPath:          "data/movies.csv",
			RecommendationsPath: "data/recommendations.csv",
			DownloadTimeout:     2 * time.Minute,
		},
		Database: DatabaseConfig{
			Path:                 ":memory:",
			MaxMemory:            "1GB",
			Threads:              0,
			MoviesTable:          "movies",
			RecommendationsTable: "recommendations",
			RecommendationKey:    "title",
			ImportCSV:            false,
		},
		API: APIConfig{
			ResponseFormat:  "json",
			CacheTTL:        10 * time.Minute,
			CacheMaxEntries: 5000,
			MaxKeyLength:    200,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load reads configuration with layered sources:
//  1. Defaults
//  2. Optional YAML config file
//  3. Optional dotenv file, which never overrides variables already set
//  4. Environment variables
//
// The result is validated before it is returned.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	// HTTP_PORT -> server.port, MOVIES_CSV_PATH -> dataset.movies_path, ...
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadEnvFile applies ENV_FILE, or .env when unset. An explicitly named file
// must exist.
func loadEnvFile() error {
	path := os.Getenv(EnvFileEnvVar)
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// findConfigFile returns the first config file found, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths are parsed as comma-separated lists when set from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower-cased) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"server_timeout":   "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Dataset
	"dataset_source":           "dataset.source",
	"movies_csv_path":          "dataset.movies_path",
	"recommendations_csv_path": "dataset.recommendations_path",
	"movies_csv_url":           "dataset.movies_url",
	"recommendations_csv_url":  "dataset.recommendations_url",
	"download_timeout":         "dataset.download_timeout",

	// Database
	"database_driver":            "database.driver",
	"duckdb_path":                "database.path",
	"duckdb_max_memory":          "database.max_memory",
	"duckdb_threads":             "database.threads",
	"duckdb_import_csv":          "database.import_csv",
	"mysql_dsn":                  "database.dsn",
	"movies_table":               "database.movies_table",
	"recommendations_table":      "database.recommendations_table",
	"recommendations_key_column": "database.recommendation_key",

	// API
	"response_format":   "api.response_format",
	"cache_ttl":         "api.cache_ttl",
	"cache_max_entries": "api.cache_max_entries",
	"max_key_length":    "api.max_key_length",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc maps an environment variable name to its koanf path, or ""
// to skip it.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
