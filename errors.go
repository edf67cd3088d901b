package retrofit

import "errors"

var (
	// ErrNegativeIterations is returned when the iteration count is < 0.
	ErrNegativeIterations = errors.New("iterations must be non-negative")
)
