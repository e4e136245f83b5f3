// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "time"

// Stats is a point-in-time copy of the cache's usage counters. Mutating a
// returned Stats never affects the live collector.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	HitRate   float64

	// Oldest/newest LastAccessedAt among live entries; zero when empty.
	OldestAccess time.Time
	NewestAccess time.Time
}

// metricsCollector owns the hit/miss/eviction counters. Evictions count
// capacity-pressure removals only; expiry (lazy or swept) is a miss at most,
// never an eviction. Synchronization is the facade's mutex.
type metricsCollector struct {
	hits      uint64
	misses    uint64
	evictions uint64
	size      int
}

func (m *metricsCollector) recordHit()      { m.hits++ }
func (m *metricsCollector) recordMiss()     { m.misses++ }
func (m *metricsCollector) recordEviction() { m.evictions++ }
func (m *metricsCollector) setSize(n int)   { m.size = n }

// snapshot recomputes the hit rate from the current counters each time rather
// than maintaining it incrementally, so it cannot drift.
func (m *metricsCollector) snapshot() Stats {
	var rate float64
	if accesses := m.hits + m.misses; accesses > 0 {
		rate = float64(m.hits) / float64(accesses)
	}
	return Stats{
		Hits:      m.hits,
		Misses:    m.misses,
		Evictions: m.evictions,
		Size:      m.size,
		HitRate:   rate,
	}
}
