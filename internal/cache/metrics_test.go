// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_SnapshotIsACopy(t *testing.T) {
	m := &metricsCollector{}
	m.recordHit()
	m.recordMiss()
	m.setSize(1)

	st := m.snapshot()
	st.Hits = 99
	st.Size = 99

	after := m.snapshot()
	assert.Equal(t, uint64(1), after.Hits, "mutating a snapshot must not leak back")
	assert.Equal(t, 1, after.Size)
}

func TestMetrics_HitRate(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		misses int
		want   float64
	}{
		{name: "no accesses", want: 0},
		{name: "all hits", hits: 4, want: 1},
		{name: "all misses", misses: 3, want: 0},
		{name: "two thirds", hits: 2, misses: 1, want: 2.0 / 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &metricsCollector{}
			for i := 0; i < tt.hits; i++ {
				m.recordHit()
			}
			for i := 0; i < tt.misses; i++ {
				m.recordMiss()
			}
			assert.InDelta(t, tt.want, m.snapshot().HitRate, 1e-9)
		})
	}
}

func TestMetrics_EvictionCounter(t *testing.T) {
	m := &metricsCollector{}
	m.recordEviction()
	m.recordEviction()
	assert.Equal(t, uint64(2), m.snapshot().Evictions)
}
