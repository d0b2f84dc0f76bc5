// Package repository defines the composition result store interface and errors.
package repository

import (
	"context"

	"github.com/adrata/monaco/internal/domain/model"
)

// Store provides read/write access to completed composition results. Results
// are transient computation artifacts; the store is a bounded cache keyed by
// job id, not durable persistence.
type Store interface {
	// Put stores a result under its job id, replacing any previous result.
	Put(ctx context.Context, result model.CompositionResult) error

	// Get returns the result for a job id.
	// Returns ErrNotFound if the job is unknown.
	Get(ctx context.Context, jobID string) (model.CompositionResult, error)

	// Recent returns up to n results, most recently completed first.
	Recent(ctx context.Context, n int) ([]model.CompositionResult, error)

	// Count returns the number of stored results.
	Count(ctx context.Context) int
}
