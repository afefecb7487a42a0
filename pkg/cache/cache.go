package cache

import "time"

// Cache stores small, slow-changing lookups (clock offsets, asset metadata).
// Market records and prices are deliberately never cached: both are
// time-sensitive and recomputed fresh on every resolution.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns (value, true) if found, (nil, false) if not found.
	Get(key string) (interface{}, bool)

	// Set stores a value in the cache with a TTL.
	Set(key string, value interface{}, ttl time.Duration) bool

	// Delete removes a value from the cache.
	Delete(key string)

	// Close closes the cache and releases resources.
	Close()
}
