package repository

// StoreOption applies a configuration option to the MemStore.
type StoreOption func(*MemStore)

// WithMaxResults bounds the number of stored results. Once full, the oldest
// result is evicted. maxSize <= 0 keeps every result.
func WithMaxResults(maxSize int) StoreOption {
	return func(s *MemStore) {
		s.maxSize = maxSize
	}
}
