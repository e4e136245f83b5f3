// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/emeeran/aicachego/internal/cachekey"
)

// Model is one entry from a provider's model listing.
type Model struct {
	ID      string
	OwnedBy string
}

// Models lists the provider's models, served from the cache when a previous
// fetch for the same host is still live.
func (c *Client) Models(ctx context.Context) ([]Model, error) {
	key := cachekey.Derive("models", c.host)

	doc, err := c.hitter(ctx, key, "GET", c.host+"/v1/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var models []Model
	for _, m := range gjson.GetBytes(doc, "data").Array() {
		models = append(models, Model{
			ID:      m.Get("id").String(),
			OwnedBy: m.Get("owned_by").String(),
		})
	}
	return models, nil
}
