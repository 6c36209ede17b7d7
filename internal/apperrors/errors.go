package apperrors

import "errors"

// Business logic errors represent configuration or selection problems.
// These are the only conditions surfaced to callers; numeric edge cases
// (empty portfolios, zero cost basis) are absorbed with zero-valued results
// and price perturbations are clamped locally, never reported.
// ErrEmptySelection indicates that the portfolio selection filter admitted
// zero catalog records. Callers should treat this as a configuration error
// rather than rendering an empty dashboard.
var ErrEmptySelection = errors.New("selection filter admits no catalog records")
