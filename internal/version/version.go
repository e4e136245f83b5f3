// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the build version, overridden at link time with
// -ldflags "-X github.com/emeeran/aicachego/internal/version.Version=...".
package version

var Version = "dev"
