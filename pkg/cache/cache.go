// Package cache provides a small byte-blob cache used to memoize
// rendered graph artifacts (SVG, PNG) between CLI runs.
//
// Keys are caller-chosen strings; [Key] derives one from the content
// being rendered, so any change to the DOT text or output format misses
// cleanly. Two implementations are provided: [FileCache] for persistent
// on-disk caching and [NullCache] for disabling caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache stores opaque byte blobs under string keys with an optional TTL.
// Implementations must treat a missing or expired entry as a miss, never
// an error.
type Cache interface {
	// Get returns the blob for key and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A non-positive ttl means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key if present. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a cache key from a prefix and the content it depends on:
// "<prefix>:<sha256(parts)>". Identical inputs always produce identical
// keys; the full 256-bit hash keeps collisions out of reach.
func Key(prefix string, parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(h.Sum(nil)))
}

// Hash returns the SHA-256 hex digest of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
