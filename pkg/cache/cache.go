// Package cache stores PageRank results and rendered artifacts so repeated
// runs over an unchanged graph skip the solver and the renderer.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: JSON entries under a directory, used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the API server
//   - [NullCache]: stores nothing, used when caching is disabled
//
// Keys come from a [Keyer]. The default keyer hashes the graph content and
// every option that changes the output, so a key never aliases two
// different results. [ScopedKeyer] prefixes keys to share one backend
// between several deployments.
package cache

import (
	"context"
	"time"
)

// Default time-to-live per entry kind.
const (
	TTLResult   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with optional expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl <= 0 never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend.
	Close() error
}
