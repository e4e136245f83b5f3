// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cache implements a single-process, bounded in-memory cache combining
// LRU eviction with per-entry TTL expiration and live usage metrics. It exists
// to memoize expensive external calls (provider completions, model-list
// fetches) behind a small synchronous API.
//
// One mutex guards the entry store, the recency index and the metrics, so
// every public operation and every background sweep pass is atomic with
// respect to all of them. The cache owns its sweeper goroutine; call Close to
// stop it.
package cache
