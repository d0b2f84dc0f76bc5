// Package dedupe defines the interface for request idempotency tracking.
package dedupe

// Option applies a configuration option to the in-memory deduper.
type Option func(*inMemoryDeduper)

// WithMaxSize bounds the number of request IDs kept in memory. Once full, the
// oldest ID is evicted. maxSize <= 0 keeps every ID (no eviction).
func WithMaxSize(maxSize int) Option {
	return func(d *inMemoryDeduper) {
		d.maxSize = maxSize
	}
}
