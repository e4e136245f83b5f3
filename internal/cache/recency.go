// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package cache

// recencyIndex tracks use order with a strictly increasing token per touch.
// The key holding the smallest live token is the LRU eviction victim. Tokens
// are never reused; the counter only goes back to zero on reset.
//
// Victim selection is a linear scan. The map stays in lockstep with the entry
// store, both bounded by MaxSize, so n is small and the scan is cheaper to
// reason about than a heap or an intrusive list.
type recencyIndex struct {
	counter uint64
	tokens  map[string]uint64
}

func newRecencyIndex() *recencyIndex {
	return &recencyIndex{tokens: make(map[string]uint64)}
}

// touch assigns key the next token, creating the association if absent.
func (r *recencyIndex) touch(key string) {
	r.counter++
	r.tokens[key] = r.counter
}

// victim returns the key with the smallest live token, or false when empty.
func (r *recencyIndex) victim() (string, bool) {
	var (
		victim string
		min    uint64
		found  bool
	)
	for key, tok := range r.tokens {
		if !found || tok < min {
			victim, min, found = key, tok, true
		}
	}
	return victim, found
}

func (r *recencyIndex) remove(key string) {
	delete(r.tokens, key)
}

// reset drops all associations and restarts the token counter at zero.
func (r *recencyIndex) reset() {
	r.counter = 0
	r.tokens = make(map[string]uint64)
}

func (r *recencyIndex) len() int {
	return len(r.tokens)
}
