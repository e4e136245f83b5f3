// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Defaults applied to zero-valued Config fields.
const (
	DefaultMaxSize         = 100
	DefaultTTL             = 5 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Config controls capacity, expiry and sweep behavior.
//
//   - MaxSize is the entry cap; 0 means DefaultMaxSize, negative is rejected.
//   - DefaultTTL applies to Set; 0 means DefaultTTL, negative is rejected.
//   - CleanupInterval schedules the background sweeper. Disabled means no
//     sweeper runs and expiry is detected lazily on Get only.
type Config struct {
	MaxSize         int
	DefaultTTL      time.Duration
	CleanupInterval time.Duration

	// DisableSweeper turns the background sweeper off. Needed because a zero
	// CleanupInterval takes the default rather than meaning "off".
	DisableSweeper bool
}

// Cache is a concurrency-safe in-memory cache with LRU eviction and TTL
// expiration. The entry store, recency index and metrics are guarded by one
// mutex so the three never disagree mid-operation.
//
// Each instance owns its counters and its sweeper goroutine; there is no
// process-wide state. Call Close to stop the sweeper.
type Cache struct {
	mu sync.Mutex

	maxSize    int
	defaultTTL time.Duration

	store   *store
	recency *recencyIndex
	metrics *metricsCollector

	// Goroutine ownership.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	sweepEvery time.Duration
	closed     bool
}

// New constructs a cache and starts the background sweeper unless disabled.
// Negative configuration values are a construction-time error; no operation
// on a successfully constructed cache returns one.
func New(cfg Config) (*Cache, error) {
	if cfg.MaxSize < 0 {
		return nil, fmt.Errorf("invalid max size: %d", cfg.MaxSize)
	}
	if cfg.DefaultTTL < 0 {
		return nil, fmt.Errorf("invalid default ttl: %s", cfg.DefaultTTL)
	}
	if cfg.CleanupInterval < 0 {
		return nil, fmt.Errorf("invalid cleanup interval: %s", cfg.CleanupInterval)
	}

	if cfg.MaxSize == 0 {
		cfg.MaxSize = DefaultMaxSize
	}
	if cfg.DefaultTTL == 0 {
		cfg.DefaultTTL = DefaultTTL
	}
	if cfg.CleanupInterval == 0 {
		cfg.CleanupInterval = DefaultCleanupInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := &Cache{
		maxSize:    cfg.MaxSize,
		defaultTTL: cfg.DefaultTTL,
		store:      newStore(),
		recency:    newRecencyIndex(),
		metrics:    &metricsCollector{},
		ctx:        ctx,
		cancel:     cancel,
		sweepEvery: cfg.CleanupInterval,
	}

	if !cfg.DisableSweeper {
		c.wg.Add(1)
		go c.sweepLoop()
	}

	return c, nil
}

// Close stops the sweeper and releases all entries. Safe to call repeatedly;
// only the first call does anything.
func (c *Cache) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.store.removeAll()
	c.recency.reset()
	c.metrics.setSize(0)
	cancel := c.cancel
	c.mu.Unlock()

	// Cancel outside the lock so shutdown doesn't block a sweep in progress.
	cancel()
	c.wg.Wait()
	return nil
}

// Get returns the live value for key. An absent key is a miss. An expired key
// is removed on the spot (lazy expiry) and reported as a miss. A hit refreshes
// recency and access bookkeeping.
func (c *Cache) Get(key string) (any, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.store.lookup(key)
	if !ok {
		c.metrics.recordMiss()
		return nil, false
	}

	if e.expired(now) {
		c.removeLocked(key)
		c.metrics.recordMiss()
		return nil, false
	}

	c.recency.touch(key)
	e.LastAccessedAt = now
	e.AccessCount++
	c.metrics.recordHit()
	return e.Value, true
}

// Set stores value under key with the configured default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores value under key with an explicit TTL.
//
// An existing key, live or expired, is overwritten in place with fresh value,
// expiry and recency; the overwrite path never evicts. A new key at capacity
// evicts the strict LRU victim first, expired or not, and counts one eviction.
//
// ttl <= 0 yields an already-expired entry: it occupies a slot until swept or
// looked up, but is never observably readable.
func (c *Cache) SetTTL(key string, value any, ttl time.Duration) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if _, ok := c.store.lookup(key); !ok && c.store.len() >= c.maxSize {
		if victim, ok := c.recency.victim(); ok {
			c.removeLocked(victim)
			c.metrics.recordEviction()
		}
	}

	c.store.insert(key, value, ttl, now)
	c.recency.touch(key)
	c.metrics.setSize(c.store.len())
}

// Delete removes key from the cache and reports whether anything was removed.
// Deletes are not recorded in the usage counters.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := c.removeLocked(key)
	return removed
}

// Clear removes every entry and restarts the recency token counter. The
// hit/miss/eviction counters are preserved; they describe the lifetime of the
// cache instance, not of its current contents.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.removeAll()
	c.recency.reset()
	c.metrics.setSize(0)
}

// Stats returns a snapshot of the usage counters plus the access-time spread
// of the live entries.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.metrics.snapshot()
	for _, key := range c.store.keys() {
		e, _ := c.store.lookup(key)
		if st.OldestAccess.IsZero() || e.LastAccessedAt.Before(st.OldestAccess) {
			st.OldestAccess = e.LastAccessedAt
		}
		if e.LastAccessedAt.After(st.NewestAccess) {
			st.NewestAccess = e.LastAccessedAt
		}
	}
	return st
}

// Len returns the number of stored entries, expired-but-unswept included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.len()
}

// Keys returns the stored keys in no particular order. Debug helper.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.keys()
}

// removeLocked drops key from the store and the recency index together, which
// is the only way anything is ever removed.
func (c *Cache) removeLocked(key string) bool {
	if !c.store.remove(key) {
		return false
	}
	c.recency.remove(key)
	c.metrics.setSize(c.store.len())
	return true
}
