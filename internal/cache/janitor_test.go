// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestJanitorSweepsExpiredEntries(t *testing.T) {
	t.Parallel()

	c := New(time.Minute, 10)
	c.SetWithTTL("stale", 1, -time.Second)
	c.Set("fresh", 2)

	j := NewJanitor(c, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for c.Len() != 1 {
		if time.Now().After(deadline) {
			t.Fatalf("janitor did not sweep, %d entries remain", c.Len())
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestJanitorDefaults(t *testing.T) {
	t.Parallel()

	j := NewJanitor(New(time.Minute, 1), 0)
	if j.interval != DefaultJanitorInterval {
		t.Errorf("Expected default interval, got %v", j.interval)
	}
	if j.String() != "cache-janitor" {
		t.Errorf("String() = %q", j.String())
	}
}
