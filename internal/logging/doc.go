// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package logging provides zerolog-based structured logging for Cinelookup.
//
// A single global logger is configured once from main and used by every
// package through the level helpers:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("movies", n).Msg("Dataset loaded")
//	logging.Error().Err(err).Msg("Failed to load dataset")
//
// # Request Context
//
// The HTTP middleware stores a request ID and a correlation ID in the request
// context. Ctx returns a logger carrying both:
//
//	logging.Ctx(r.Context()).Warn().Str("title", title).Msg("Title not found")
//
// # slog Integration
//
// SlogHandler adapts zerolog to log/slog so that the suture supervisor can
// report service events through the same output:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
//
// # Sanitization
//
// SanitizeValue strips control characters from user-supplied strings before
// they are logged, and SanitizeDSN masks the password in database DSNs.
//
// # Configuration
//
// Environment variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file and line (default: false)
package logging
