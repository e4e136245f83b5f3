// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

import "time"

// Entry is one cached key with its bookkeeping. Value is opaque to the cache
// and never copied; callers that store references own the aliasing.
type Entry struct {
	Key            string
	Value          any
	ExpiresAt      time.Time
	LastAccessedAt time.Time
	AccessCount    uint64
}

// expired reports whether the entry is logically dead at now. The store never
// calls this itself; interpreting expiry is the facade's job.
func (e *Entry) expired(now time.Time) bool {
	return !e.ExpiresAt.After(now)
}

// store is the dumb associative container: key -> entry, timestamps included,
// no policy. Not safe for concurrent use; the facade's mutex covers it.
type store struct {
	entries map[string]*Entry
}

func newStore() *store {
	return &store{entries: make(map[string]*Entry)}
}

// insert creates or replaces the entry for key. Replacement resets value,
// expiry and access bookkeeping in place.
func (s *store) insert(key string, value any, ttl time.Duration, now time.Time) *Entry {
	e := &Entry{
		Key:            key,
		Value:          value,
		ExpiresAt:      now.Add(ttl),
		LastAccessedAt: now,
	}
	s.entries[key] = e
	return e
}

// lookup returns the entry for key whether or not it has expired.
func (s *store) lookup(key string) (*Entry, bool) {
	e, ok := s.entries[key]
	return e, ok
}

// remove deletes key and reports whether anything was there.
func (s *store) remove(key string) bool {
	if _, ok := s.entries[key]; !ok {
		return false
	}
	delete(s.entries, key)
	return true
}

func (s *store) removeAll() {
	s.entries = make(map[string]*Entry)
}

func (s *store) len() int {
	return len(s.entries)
}

// keys returns the live key set in no particular order.
func (s *store) keys() []string {
	out := make([]string, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	return out
}
