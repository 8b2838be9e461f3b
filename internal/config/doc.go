// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package config loads and validates Cinelookup configuration.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Built-in defaults (defaultConfig)
 2. A YAML file: CONFIG_PATH, then config.yaml, config.yml,
    /etc/cinelookup/config.yaml and /etc/cinelookup/config.yml
 3. A dotenv file: ENV_FILE, or .env when unset (godotenv; existing variables win)
 4. Environment variables from a fixed allow-list

# Environment Variables

Server:
  - HTTP_PORT (default 8000), HTTP_HOST (default 0.0.0.0)
  - SERVER_TIMEOUT, SHUTDOWN_TIMEOUT
  - ENVIRONMENT: development, staging or production

Dataset:
  - DATASET_SOURCE: csv (default), duckdb or mysql
  - MOVIES_CSV_PATH, RECOMMENDATIONS_CSV_PATH
  - MOVIES_CSV_URL, RECOMMENDATIONS_CSV_URL: downloaded when the path is missing
  - DOWNLOAD_TIMEOUT

SQL source:
  - DATABASE_DRIVER (defaults to DATASET_SOURCE)
  - DUCKDB_PATH (default :memory:), DUCKDB_MAX_MEMORY, DUCKDB_THREADS
  - DUCKDB_IMPORT_CSV: materialise the CSV files into DuckDB first
  - MYSQL_DSN
  - MOVIES_TABLE, RECOMMENDATIONS_TABLE, RECOMMENDATIONS_KEY_COLUMN

API:
  - RESPONSE_FORMAT: json (default) or text
  - CACHE_TTL (0 disables the cache), CACHE_MAX_ENTRIES
  - MAX_KEY_LENGTH

Security:
  - CORS_ORIGINS: comma-separated
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
*/
package config
