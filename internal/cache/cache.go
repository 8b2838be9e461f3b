// Cinelookup - Movie Metadata Query Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinelookup

package cache

import (
	"container/list"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// DefaultCapacity bounds the cache when New is given a non-positive capacity.
const DefaultCapacity = 10000

type entry struct {
	key       string
	data      any
	expiresAt time.Time
}

// Cache is a thread-safe TTL cache bounded by entry count. When full, the
// least recently used entry is evicted.
type Cache struct {
	mu       sync.Mutex
	ttl      time.Duration
	capacity int

	// front is most recently used
	order   *list.List
	entries map[string]*list.Element

	stats Stats
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries live for ttl.
//
// Expired entries are dropped lazily on Get and in bulk by Cleanup, which a
// Janitor calls periodically.
//
//	c := cache.New(10*time.Minute, 5000)
//	c.Set(cache.GenerateKey("actor_summary", name), summary)
func New(ttl time.Duration, capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		ttl:      ttl,
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
		stats:    Stats{LastCleanup: time.Now()},
	}
}

// TTL returns the lifetime of new entries.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the value stored under key if it exists and has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		return nil, false
	}

	e := el.Value.(*entry)
	if time.Now().After(e.expiresAt) {
		c.removeElement(el)
		c.stats.Misses++
		c.stats.Evictions++
		return nil, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	return e.data, true
}

// Set stores value under key with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with a custom TTL.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := time.Now().Add(ttl)
	if el, ok := c.entries[key]; ok {
		e := el.Value.(*entry)
		e.data = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		if oldest := c.order.Back(); oldest != nil {
			c.removeElement(oldest)
			c.stats.Evictions++
		}
	}

	c.entries[key] = c.order.PushFront(&entry{key: key, data: value, expiresAt: expiresAt})
	c.stats.TotalKeys = int64(len(c.entries))
}

// Delete removes key. It is a no-op when key is absent.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.removeElement(el)
		c.stats.Evictions++
	}
}

// Clear removes every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stats.Evictions += int64(len(c.entries))
	c.order.Init()
	c.entries = make(map[string]*list.Element)
	c.stats.TotalKeys = 0
}

// Len returns the number of stored entries, including expired ones not yet
// swept.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Cleanup removes expired entries and returns how many were removed.
func (c *Cache) Cleanup() int {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if now.After(el.Value.(*entry).expiresAt) {
			c.removeElement(el)
			removed++
		}
		el = prev
	}

	c.stats.Evictions += int64(removed)
	c.stats.LastCleanup = now
	return removed
}

// GetStats returns a snapshot of the cache counters.
func (c *Cache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// HitRate returns the hit rate as a percentage.
func (c *Cache) HitRate() float64 {
	stats := c.GetStats()
	total := stats.Hits + stats.Misses
	if total == 0 {
		return 0.0
	}
	return float64(stats.Hits) / float64(total) * 100.0
}

// removeElement must be called with mu held.
func (c *Cache) removeElement(el *list.Element) {
	c.order.Remove(el)
	delete(c.entries, el.Value.(*entry).key)
	c.stats.TotalKeys = int64(len(c.entries))
}

// GenerateKey creates a cache key from an operation name and its parameters.
func GenerateKey(operation string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", operation, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", operation, hash[:16])
}
