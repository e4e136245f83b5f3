// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecency_VictimIsLowestToken(t *testing.T) {
	r := newRecencyIndex()

	_, ok := r.victim()
	assert.False(t, ok, "empty index has no victim")

	r.touch("a")
	r.touch("b")
	r.touch("c")

	victim, ok := r.victim()
	assert.True(t, ok)
	assert.Equal(t, "a", victim)

	// Re-touching a promotes it past b.
	r.touch("a")
	victim, _ = r.victim()
	assert.Equal(t, "b", victim)
}

func TestRecency_TokensStrictlyIncrease(t *testing.T) {
	r := newRecencyIndex()

	r.touch("a")
	r.touch("b")
	r.touch("a")

	assert.Greater(t, r.tokens["a"], r.tokens["b"])
	assert.Equal(t, uint64(3), r.counter, "tokens are never reused")
}

func TestRecency_RemoveAndReset(t *testing.T) {
	r := newRecencyIndex()

	r.touch("a")
	r.touch("b")
	r.remove("a")

	victim, ok := r.victim()
	assert.True(t, ok)
	assert.Equal(t, "b", victim)

	r.reset()
	assert.Equal(t, uint64(0), r.counter, "reset restarts the counter")
	assert.Equal(t, 0, r.len())
	_, ok = r.victim()
	assert.False(t, ok)
}
