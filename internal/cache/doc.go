// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

/*
Package cache memoizes query responses.

Actor and director summaries scan the whole movies table, so the API layer
stores their results here keyed by GenerateKey(operation, normalizedKey).
Entries expire after a fixed TTL and the cache is bounded by entry count with
least-recently-used eviction.

# Expiry

Expired entries are dropped lazily on Get. A Janitor runs under the supervisor
and calls Cleanup on a ticker, updating the response_cache_entries gauge:

	c := cache.New(cfg.API.CacheTTL, cfg.API.CacheMaxEntries)
	tree.AddMaintenanceService(cache.NewJanitor(c, time.Minute))

# Thread Safety

All methods are safe for concurrent use.
*/
package cache
