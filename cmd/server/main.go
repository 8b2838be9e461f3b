// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinelookup/internal/api"
	"github.com/tomtom215/cinelookup/internal/cache"
	"github.com/tomtom215/cinelookup/internal/config"
	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/query"
	"github.com/tomtom215/cinelookup/internal/supervisor"
	"github.com/tomtom215/cinelookup/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", api.Version).
		Str("environment", cfg.Server.Environment).
		Str("dataset_source", cfg.Dataset.Source).
		Msg("Starting Cinelookup")

	// Cancelled on SIGINT or SIGTERM. Also bounds the dataset load.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := ensureDataset(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("Failed to fetch dataset")
	}

	tables, err := loadTables(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	engine := query.New(tables)
	responseCache := cache.New(cfg.API.CacheTTL, cfg.API.CacheMaxEntries)
	handler := api.NewHandler(engine, cfg, responseCache)
	router := api.NewRouter(handler, cfg)

	if cfg.HasWildcardCORS() && cfg.IsProduction() {
		logging.Warn().Msg("CORS allows any origin in production")
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.API.CacheTTL > 0 {
		tree.AddMaintenanceService(cache.NewJanitor(responseCache, cfg.API.CacheTTL))
	}

	server := services.NewServer(&cfg.Server, router.Setup())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().
		Str("addr", server.Addr).
		Int("movies", len(tables.Movies)).
		Int("recommendations", len(tables.Recommendations)).
		Msg("Starting supervisor tree")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	tree.ReportUnstopped()
	logging.Info().Msg("Application stopped gracefully")
}
