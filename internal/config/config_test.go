// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `
output: text
padding: 2
cache:
  max_size: 50
  ttl: 90s
  cleanup_interval: 60000
models:
  output: json
`

func loadTestConfig(t *testing.T, namespace string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "aicache.yaml"), []byte(testDoc), 0o600))
	t.Setenv("XDG_CONFIG_HOME", dir)

	_, err := Load(namespace)
	require.NoError(t, err)
	t.Cleanup(func() { Config = Type{} })
}

func TestGetString(t *testing.T) {
	loadTestConfig(t, "")

	got, err := GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "text", got)

	got, err = GetString("missing", "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	_, err = GetString("missing")
	assert.Error(t, err)
}

func TestGetString_NamespaceWins(t *testing.T) {
	loadTestConfig(t, "models")

	got, err := GetString("output")
	require.NoError(t, err)
	assert.Equal(t, "json", got, "namespaced key should shadow the global one")
}

func TestGetInt(t *testing.T) {
	loadTestConfig(t, "")

	got, err := GetInt("cache.max_size")
	require.NoError(t, err)
	assert.Equal(t, 50, got)

	got, err = GetInt("missing", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, got)

	_, err = GetInt("output")
	assert.Error(t, err, "string value is not an int")
}

func TestGetDuration(t *testing.T) {
	loadTestConfig(t, "")

	// Duration syntax.
	got, err := GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, got)

	// Bare numbers are milliseconds.
	got, err = GetDuration("cache.cleanup_interval")
	require.NoError(t, err)
	assert.Equal(t, time.Minute, got)

	got, err = GetDuration("missing", 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, got)

	_, err = GetDuration("output")
	assert.Error(t, err)
}
