// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// aicache is the main package for the aicache command line tool. It wires the
// CLI, delegates to internal packages, and serves as the entry point.
package main
