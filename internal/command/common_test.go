// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeeran/aicachego/internal/cache"
)

func TestStatsRows(t *testing.T) {
	rows, columns := StatsRows(cache.Stats{
		Hits:      2,
		Misses:    1,
		Evictions: 1,
		Size:      3,
		HitRate:   2.0 / 3.0,
	})

	require.Len(t, rows, 1)
	assert.Equal(t, []string{"hits", "misses", "evictions", "size", "hit_rate", "last_access"}, columns)
	assert.Equal(t, "2", rows[0]["hits"])
	assert.Equal(t, "66.7%", rows[0]["hit_rate"])
	assert.Equal(t, "-", rows[0]["last_access"], "empty cache has no access times")
}

func TestStatsRows_LastAccess(t *testing.T) {
	rows, _ := StatsRows(cache.Stats{NewestAccess: time.Now()})
	assert.NotEqual(t, "-", rows[0]["last_access"])
}

func TestOutputValidator(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "text", value: "text"},
		{name: "json", value: "json"},
		{name: "yaml", value: "yaml"},
		{name: "unknown", value: "csv", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FlagValidators(tt.value, OutputValidator)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewCacheFromConfig_Defaults(t *testing.T) {
	c, err := NewCacheFromConfig()
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, 0, c.Len())
}
