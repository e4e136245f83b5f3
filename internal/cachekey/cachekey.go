// Copyright (c) 2026 Emee Ran <emeeran@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cachekey derives stable cache keys from request parameters so that
// identical provider calls land on the same cache entry.
package cachekey

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Derive builds a key of the form "<op>:<md5hex>" from the operation name and
// its identifying parts. Parts are joined with an unlikely separator before
// hashing so ("a","bc") and ("ab","c") don't collide.
func Derive(op string, parts ...string) string {
	h := md5.New()
	_, _ = h.Write([]byte(strings.Join(parts, "\x1f")))
	return op + ":" + hex.EncodeToString(h.Sum(nil))
}
