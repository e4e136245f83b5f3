// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/emeeran/aicachego/internal/meta"
	"github.com/emeeran/aicachego/internal/output"
)

// ModelsCommandAction is the action handler for the "models" subcommand. It
// lists the provider's models through the response cache and emits results
// according to the common output flags.
func ModelsCommandAction(ctx context.Context, cmd *cli.Command) error {
	client, c, err := InitProviderQuery(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	models, err := client.Models(ctx)
	if err != nil {
		return err
	}

	//nolint:prealloc // Don't prealloc because we don't know what len will be.
	var rows []map[string]interface{}
	for _, m := range models {
		rows = append(rows, map[string]interface{}{
			"id":       m.ID,
			"owned_by": m.OwnedBy,
		})
	}

	output.Spit(rows, []string{"id", "owned_by"}, cmd, nil)
	return nil
}

// ModelsCommandBuilder constructs the cli.Command definition for the "models"
// command, wiring flags, metadata, and the action handler.
func ModelsCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	flags := NewGlobalFlags("models")
	flags = append(flags,
		NewHostFlag("models", meta.Config.Source),
		NewTokenFlag(),
		NewTTLFlag("models", meta.Config.Source),
	)

	return &cli.Command{
		Name:      "models",
		Usage:     "list provider models (cached)",
		UsageText: `aicache models [options]`,
		Flags:     flags,
		Action:    ModelsCommandAction,
	}
}
