// Package cache stores rendered diagram artifacts between CLI runs.
//
// Rendering is deterministic: the same manifest and format always
// produce the same bytes, so artifacts are cached under a key derived
// from the manifest content. PDF and PNG conversion shells out to an
// external tool, which makes a hit genuinely cheaper than a re-render.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// ArtifactKey generates the cache key for a rendered artifact: the
// manifest content hash scoped by output format and size, so one
// manifest can cache several renderings side by side.
func ArtifactKey(manifest []byte, format string, size int) string {
	return fmt.Sprintf("artifact:%s:%s:%d", format, Hash(manifest), size)
}
