package tier

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoTier marks company size signals that resolve to no tier. Engine
	// construction must surface this to the caller; no meaningful thresholds
	// can be computed without a tier.
	ErrNoTier = errors.New("no resolvable company tier")
)
