// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

// runWithFlags runs fn inside a command invocation so the output flags carry
// real parsed values.
func runWithFlags(t *testing.T, args []string, fn func(cmd *cli.Command)) {
	t.Helper()
	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Value: "text"},
			&cli.BoolFlag{Name: "color"},
			&cli.BoolFlag{Name: "titles"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fn(cmd)
			return nil
		},
	}
	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

var dataset = []map[string]interface{}{
	{"id": "gpt-4o", "owner": "openai"},
	{"id": "o3", "owner": "openai"},
}

func TestSpit_JSON(t *testing.T) {
	runWithFlags(t, []string{"--output", "json"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		Spit(dataset, []string{"id", "owner"}, cmd, &buf)
		assert.Contains(t, buf.String(), `"id":"gpt-4o"`)
		assert.Contains(t, buf.String(), `"owner":"openai"`)
	})
}

func TestSpit_YAML(t *testing.T) {
	runWithFlags(t, []string{"--output", "yaml"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		Spit(dataset, []string{"id", "owner"}, cmd, &buf)
		assert.Contains(t, buf.String(), "id: gpt-4o")
	})
}

func TestSpit_TableWithTitles(t *testing.T) {
	runWithFlags(t, []string{"--titles"}, func(cmd *cli.Command) {
		var buf bytes.Buffer
		Spit(dataset, []string{"id", "owner"}, cmd, &buf)
		out := buf.String()
		assert.Contains(t, out, "id")
		assert.Contains(t, out, "gpt-4o")
		assert.Contains(t, out, "o3")
	})
}

func TestSpit_EmptyResultSetWritesNothing(t *testing.T) {
	runWithFlags(t, nil, func(cmd *cli.Command) {
		var buf bytes.Buffer
		Spit(nil, []string{"id"}, cmd, &buf)
		assert.Empty(t, buf.String())
	})
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string
	}{
		{name: "nil uses placeholder", in: nil, want: "-"},
		{name: "string", in: "x", want: "x"},
		{name: "int", in: 3, want: "3"},
		{name: "uint64", in: uint64(7), want: "7"},
		{name: "float", in: 0.5, want: "0.5"},
		{name: "bool", in: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceToString(tt.in, "-"))
		})
	}
}
