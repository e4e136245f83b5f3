// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/emeeran/aicachego/internal/meta"
)

// AskCommandAction is the action handler for the "ask" subcommand. It sends
// the prompt to the provider and prints the completion; repeated identical
// prompts within the TTL are answered from the cache.
func AskCommandAction(ctx context.Context, cmd *cli.Command) error {
	prompt := strings.Join(cmd.Args().Slice(), " ")
	if prompt == "" {
		return errors.New("no prompt specified")
	}

	client, c, err := InitProviderQuery(cmd)
	if err != nil {
		return err
	}
	defer c.Close()

	answer, err := client.Complete(ctx, cmd.String("model"), prompt)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}

// AskCommandBuilder constructs the cli.Command definition for the "ask"
// command, wiring flags, metadata, and the action handler.
func AskCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "ask",
		Usage:     "memoized chat completion",
		UsageText: `aicache ask [options] PROMPT`,
		Flags: []cli.Flag{
			NewHostFlag("ask", meta.Config.Source),
			NewTokenFlag(),
			NewTTLFlag("ask", meta.Config.Source),
			&cli.StringFlag{
				Name:    "model",
				Aliases: []string{"m"},
				Usage:   "model id to ask",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("AICACHE_MODEL"),
				),
				Value: "gpt-4o-mini",
			},
		},
		Action: AskCommandAction,
	}
}
