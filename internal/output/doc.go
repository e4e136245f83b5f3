// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package output renders command result sets as text tables, JSON or YAML,
// honoring the common --output, --color and --titles flags.
package output
