package engine

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidDeal marks a deal context that fails validation before tier
	// resolution. Composition without a positive deal size would gate every
	// VP, director, and manager out of purchase authority.
	ErrInvalidDeal = errors.New("invalid deal context")
)
