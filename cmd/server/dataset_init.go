// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package main

import (
	"context"
	"fmt"

	"github.com/tomtom215/cinelookup/internal/config"
	"github.com/tomtom215/cinelookup/internal/database"
	"github.com/tomtom215/cinelookup/internal/dataset"
	"github.com/tomtom215/cinelookup/internal/logging"
)

// ensureDataset downloads missing CSV files when a URL is configured. Sources
// that never read the CSV files skip this step.
func ensureDataset(ctx context.Context, cfg *config.Config) error {
	if !cfg.NeedsCSVFiles() {
		return nil
	}

	files := []struct{ path, url string }{
		{cfg.Dataset.MoviesPath, cfg.Dataset.MoviesURL},
		{cfg.Dataset.RecommendationsPath, cfg.Dataset.RecommendationsURL},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		fetched, err := dataset.EnsureLocal(ctx, f.path, f.url, cfg.Dataset.DownloadTimeout)
		if err != nil {
			return err
		}
		if fetched {
			logging.Info().Str("path", f.path).Msg("Dataset file downloaded")
		}
	}
	return nil
}

// loadTables reads the dataset from the configured source. SQL connections
// are closed once the rows are in memory.
func loadTables(ctx context.Context, cfg *config.Config) (*dataset.Tables, error) {
	if cfg.Dataset.Source == dataset.SourceCSV {
		return dataset.LoadCSV(ctx, cfg.Dataset.MoviesPath, cfg.Dataset.RecommendationsPath)
	}

	db, err := database.Open(ctx, cfg.SQLDriver(), &cfg.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.ImportCSV {
		if err := db.ImportCSV(ctx, cfg.Dataset.MoviesPath, cfg.Dataset.RecommendationsPath); err != nil {
			return nil, fmt.Errorf("csv import: %w", err)
		}
	}

	return db.LoadTables(ctx)
}
