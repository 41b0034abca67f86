// Package cache provides the injectable key-value cache used for generated
// queries, embeddings, and computed scores, with in-memory and Redis backends.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache is a shared key-value store. Concurrent requests for the same
// uncached key may each compute and overwrite the same entry; last write
// wins, which is acceptable because computation is deterministic for
// identical inputs. Clear drops every entry and is the barrier invoked when
// scoring weights change.
type Cache interface {
	// Get returns the cached value for key, or ok=false on a miss.
	// Backend failures are reported as misses.
	Get(ctx context.Context, key string) (string, bool)
	// Set stores value under key with the given TTL (zero means no expiry)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	// Clear removes all entries owned by this cache
	Clear(ctx context.Context)
}

// Key builds a deterministic content-addressed cache key from its parts
func Key(parts ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))
	return hex.EncodeToString(sum[:])
}
