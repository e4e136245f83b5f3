// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/emeeran/aicachego/internal/cache"
	"github.com/emeeran/aicachego/internal/meta"
	"github.com/emeeran/aicachego/internal/output"
)

// DemoCommandAction walks through the cache's eviction and expiry behavior
// with a capacity-5 instance and prints the resulting usage stats.
func DemoCommandAction(ctx context.Context, cmd *cli.Command) error {
	c, err := cache.New(cache.Config{
		MaxSize:         5,
		DefaultTTL:      time.Second,
		CleanupInterval: 100 * time.Millisecond,
	})
	if err != nil {
		return err
	}
	defer c.Close()

	fmt.Println("capacity 5, ttl 1s, sweep every 100ms")

	for i := 0; i < 5; i++ {
		key := fmt.Sprintf("k%d", i)
		c.Set(key, fmt.Sprintf("v%d", i))
		fmt.Printf("SET %s\n", key)
	}

	// Reading k0 promotes it, so the next insert evicts k1 instead.
	if v, ok := c.Get("k0"); ok {
		fmt.Printf("GET k0 = %v (protects k0 from eviction)\n", v)
	}

	c.Set("k5", "v5")
	fmt.Println("SET k5 (cache full, LRU victim evicted)")

	if _, ok := c.Get("k1"); !ok {
		fmt.Println("GET k1: absent (evicted)")
	}
	if v, ok := c.Get("k0"); ok {
		fmt.Printf("GET k0 = %v (still live)\n", v)
	}

	c.SetTTL("short", "gone soon", 200*time.Millisecond)
	fmt.Println("SET short with ttl 200ms; waiting for the sweeper...")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(500 * time.Millisecond):
	}

	if _, ok := c.Get("short"); !ok {
		// The sweeper removed it without this Get noticing anything.
		fmt.Println("GET short: absent (swept)")
	}

	rows, columns := StatsRows(c.Stats())
	output.Spit(rows, columns, cmd, nil)
	return nil
}

// DemoCommandBuilder constructs the cli.Command definition for the "demo"
// command.
func DemoCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "demo",
		Usage:     "walk through LRU eviction and TTL expiry",
		UsageText: `aicache demo [options]`,
		Flags:     NewGlobalFlags("demo"),
		Action:    DemoCommandAction,
	}
}
