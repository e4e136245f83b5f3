// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/emeeran/aicachego/internal/cache"
	"github.com/emeeran/aicachego/internal/config"
	"github.com/emeeran/aicachego/internal/provider"
)

// NewCacheFromConfig builds the process-wide response cache from the
// cache.* keys of aicache.yaml, falling back to the package defaults.
func NewCacheFromConfig() (*cache.Cache, error) {
	maxSize, _ := config.GetInt("cache.max_size", cache.DefaultMaxSize)
	ttl, _ := config.GetDuration("cache.ttl", cache.DefaultTTL)
	interval, _ := config.GetDuration("cache.cleanup_interval", cache.DefaultCleanupInterval)

	log.Debugf("cache config: max_size=%d ttl=%s cleanup_interval=%s", maxSize, ttl, interval)

	c, err := cache.New(cache.Config{
		MaxSize:         maxSize,
		DefaultTTL:      ttl,
		CleanupInterval: interval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build cache: %w", err)
	}
	return c, nil
}

// InitProviderQuery builds the cache and a provider client from the command's
// host/token/ttl flags. The caller owns closing the returned cache.
func InitProviderQuery(cmd *cli.Command) (*provider.Client, *cache.Cache, error) {
	c, err := NewCacheFromConfig()
	if err != nil {
		return nil, nil, err
	}

	client := provider.New(cmd.String("host"), cmd.String("token"), cmd.Duration("ttl"), c)
	return client, c, nil
}

// StatsRows flattens a stats snapshot into a one-row result set for the
// output writer. Returns the rows and the column order.
func StatsRows(st cache.Stats) ([]map[string]interface{}, []string) {
	columns := []string{"hits", "misses", "evictions", "size", "hit_rate", "last_access"}

	lastAccess := "-"
	if !st.NewestAccess.IsZero() {
		lastAccess = humanize.Time(st.NewestAccess)
	}

	row := map[string]interface{}{
		"hits":        humanize.Comma(int64(st.Hits)),
		"misses":      humanize.Comma(int64(st.Misses)),
		"evictions":   humanize.Comma(int64(st.Evictions)),
		"size":        st.Size,
		"hit_rate":    humanize.FtoaWithDigits(st.HitRate*100, 1) + "%",
		"last_access": lastAccess,
	}

	return []map[string]interface{}{row}, columns
}
