// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/emeeran/aicachego/internal/cachekey"
)

// Complete requests a chat completion and returns the first choice's content.
// Repeating the same host/model/prompt within the TTL is served from the
// cache without touching the provider.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	key := cachekey.Derive("ask", c.host, model, prompt)

	body, err := json.Marshal(map[string]any{
		"model": model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	doc, err := c.hitter(ctx, key, "POST", c.host+"/v1/chat/completions", body)
	if err != nil {
		return "", fmt.Errorf("failed to complete: %w", err)
	}

	content := gjson.GetBytes(doc, "choices.0.message.content")
	if !content.Exists() {
		return "", fmt.Errorf("no completion content in response")
	}
	return content.String(), nil
}
