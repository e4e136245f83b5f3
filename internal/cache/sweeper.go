// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"time"

	"github.com/apex/log"
)

// sweepLoop periodically removes expired entries so that keys written once and
// never read again don't pin memory until eviction pressure finds them. Lazy
// expiry on Get alone can leave dead entries in place indefinitely.
//
// Each pass holds the lock for one full scan and nothing more; ticks that
// arrive while a pass is running coalesce, which is fine because sweeping is
// idempotent.
func (c *Cache) sweepLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.sweepEvery)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case now := <-ticker.C:
			if removed := c.sweep(now); removed > 0 {
				log.Debugf("sweep removed %d expired entries", removed)
			}
		}
	}
}

// sweep removes every entry expired at now from both the store and the
// recency index. Swept entries are maintenance, not evictions: the eviction
// counter keeps meaning "removed under capacity pressure".
func (c *Cache) sweep(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for _, key := range c.store.keys() {
		e, ok := c.store.lookup(key)
		if !ok || !e.expired(now) {
			continue
		}
		c.removeLocked(key)
		removed++
	}
	return removed
}
