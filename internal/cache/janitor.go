// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package cache

import (
	"context"
	"time"

	"github.com/tomtom215/cinelookup/internal/logging"
	"github.com/tomtom215/cinelookup/internal/metrics"
)

// DefaultJanitorInterval is used when NewJanitor is given a non-positive interval.
const DefaultJanitorInterval = 5 * time.Minute

// Janitor periodically sweeps expired entries from a Cache. It implements
// suture.Service and runs in the supervisor's maintenance layer.
type Janitor struct {
	cache    *Cache
	interval time.Duration
}

// NewJanitor creates a janitor for c.
func NewJanitor(c *Cache, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &Janitor{cache: c, interval: interval}
}

// Serve sweeps the cache every interval until ctx is canceled.
func (j *Janitor) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() {
	removed := j.cache.Cleanup()
	size := j.cache.Len()
	metrics.SetCacheEntries(size)

	if removed > 0 {
		logging.Debug().
			Int("removed", removed).
			Int("remaining", size).
			Msg("Response cache swept")
	}
}

// String returns the service name for supervisor logs.
func (j *Janitor) String() string {
	return "cache-janitor"
}
