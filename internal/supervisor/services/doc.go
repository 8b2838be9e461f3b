// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

// Package services adapts long-running components to suture's Serve pattern.
//
// HTTPServerService translates http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful Shutdown.
package services
