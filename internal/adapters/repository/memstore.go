package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/adrata/monaco/internal/domain/model"
	"github.com/adrata/monaco/pkg/metrics"
)

// Default bound on stored results.
const defaultMaxResults = 10_000

// MemStore implements Store with a mutex-guarded map plus an insertion-order
// list for recency queries and oldest-first eviction.
type MemStore struct {
	mu      sync.RWMutex
	results map[string]model.CompositionResult
	order   []string // job ids, oldest first
	maxSize int
}

// NewMemStore creates an in-memory result store with configuration options.
func NewMemStore(ctx context.Context, opts ...StoreOption) *MemStore {
	s := &MemStore{maxSize: defaultMaxResults}
	for _, opt := range opts {
		opt(s)
	}
	s.results = make(map[string]model.CompositionResult)
	metrics.UpdateStoredResults(0)
	return s
}

// Put stores a result, evicting the oldest entry when the store is full.
func (s *MemStore) Put(_ context.Context, result model.CompositionResult) error {
	if result.JobID == "" {
		return fmt.Errorf("%w: empty job id", ErrInvalidJobID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.results[result.JobID]; !exists {
		if s.maxSize > 0 && len(s.order) >= s.maxSize {
			oldest := s.order[0]
			s.order = s.order[1:]
			delete(s.results, oldest)
			metrics.RecordStoreEviction()
		}
		s.order = append(s.order, result.JobID)
	}
	s.results[result.JobID] = result
	metrics.UpdateStoredResults(len(s.results))
	return nil
}

// Get returns the stored result for a job id.
func (s *MemStore) Get(_ context.Context, jobID string) (model.CompositionResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[jobID]
	if !ok {
		return model.CompositionResult{}, fmt.Errorf("%w: %s", ErrNotFound, jobID)
	}
	return result, nil
}

// Recent returns up to n results, most recently stored first.
func (s *MemStore) Recent(_ context.Context, n int) ([]model.CompositionResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, n)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if n > len(s.order) {
		n = len(s.order)
	}
	out := make([]model.CompositionResult, 0, n)
	for i := len(s.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, s.results[s.order[i]])
	}
	return out, nil
}

// Count returns the number of stored results.
func (s *MemStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
