// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package command defines the CLI command set for aicache. It wires flags,
// validators, the shared cache instance, and the actions for each subcommand.
package command
