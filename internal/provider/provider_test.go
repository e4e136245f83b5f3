// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emeeran/aicachego/internal/cache"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(cache.Config{MaxSize: 10, DefaultTTL: time.Minute, DisableSweeper: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestModels_SecondCallServedFromCache(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/models", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{"data":[{"id":"gpt-4o","owned_by":"openai"},{"id":"o3","owned_by":"openai"}]}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "sk-test", 0, newTestCache(t))

	for i := 0; i < 2; i++ {
		models, err := client.Models(context.Background())
		require.NoError(t, err)
		require.Len(t, models, 2)
		assert.Equal(t, "gpt-4o", models[0].ID)
		assert.Equal(t, "openai", models[0].OwnedBy)
	}

	assert.Equal(t, int64(1), calls.Load(), "second listing must not hit the network")
}

func TestComplete_MemoizedPerPrompt(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		fmt.Fprintf(w, `{"choices":[{"message":{"content":"answer %d"}}]}`, calls.Load())
	}))
	defer srv.Close()

	client := New(srv.URL, "", 0, newTestCache(t))
	ctx := context.Background()

	first, err := client.Complete(ctx, "gpt-4o", "what is a cache?")
	require.NoError(t, err)
	assert.Equal(t, "answer 1", first)

	// Same prompt: memoized, same answer, no second request.
	again, err := client.Complete(ctx, "gpt-4o", "what is a cache?")
	require.NoError(t, err)
	assert.Equal(t, "answer 1", again)
	assert.Equal(t, int64(1), calls.Load())

	// Different prompt misses the cache.
	other, err := client.Complete(ctx, "gpt-4o", "what is lru?")
	require.NoError(t, err)
	assert.Equal(t, "answer 2", other)
	assert.Equal(t, int64(2), calls.Load())
}

func TestComplete_ExpiredEntryRefetches(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"hi"}}]}`)
	}))
	defer srv.Close()

	client := New(srv.URL, "", 20*time.Millisecond, newTestCache(t))
	ctx := context.Background()

	_, err := client.Complete(ctx, "m", "p")
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = client.Complete(ctx, "m", "p")
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load(), "expired entry should refetch")
}

func TestHitter_NonOKStatusIsAnErrorAndNotCached(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := New(srv.URL, "bad", 0, newTestCache(t))

	_, err := client.Models(context.Background())
	require.Error(t, err)

	_, err = client.Models(context.Background())
	require.Error(t, err)
	assert.Equal(t, int64(2), calls.Load(), "failures must not be cached")
}
