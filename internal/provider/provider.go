// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package provider wraps an OpenAI-compatible HTTP API, memoizing its
// expensive calls (model listings, completions) through the in-memory cache.
package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/apex/log"

	"github.com/emeeran/aicachego/internal/cache"
)

// Client talks to one provider host. Responses are cached under keys derived
// from the request parameters; the zero TTL means the cache default applies.
type Client struct {
	host  string
	token string
	ttl   time.Duration
	cache *cache.Cache
	http  *http.Client
}

// New builds a client for host backed by c. ttl overrides the cache's default
// TTL for this client's entries when positive.
func New(host, token string, ttl time.Duration, c *cache.Cache) *Client {
	return &Client{
		host:  host,
		token: token,
		ttl:   ttl,
		cache: c,
		http:  &http.Client{Timeout: 60 * time.Second},
	}
}

// hitter serves a request body from the cache when possible, going to the
// network and caching the response otherwise.
func (c *Client) hitter(ctx context.Context, key, method, url string, body []byte) ([]byte, error) {
	if data, ok := c.cache.Get(key); ok {
		log.Debugf("cache hit: %s", key)
		return data.([]byte), nil
	}
	log.Debugf("cache miss: %s", key)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %s", url, resp.Status)
	}

	if c.ttl > 0 {
		c.cache.SetTTL(key, doc, c.ttl)
	} else {
		c.cache.Set(key, doc)
	}

	return doc, nil
}
