package model

import "errors"

// Sentinel errors for registry operations. All three are terminal: callers
// cannot recover from them by retrying the same request.
var (
	// ErrDuplicateKey indicates a Register call with a key that is already present.
	ErrDuplicateKey = errors.New("duplicate model key")

	// ErrUnknownModel indicates a lookup for a key that was never registered.
	ErrUnknownModel = errors.New("unknown model")

	// ErrNoAvailableModel indicates that chain resolution produced no usable
	// candidate: the preferred model and every fallback entry were either
	// unregistered or unavailable.
	ErrNoAvailableModel = errors.New("no available model")

	// ErrInvalidConfig indicates a Config that violates its own invariants.
	ErrInvalidConfig = errors.New("invalid model config")
)
