package core

import "errors"

// Sentinel errors for SamplePoints construction. All constructors MUST
// return these sentinels and callers match them via errors.Is.
var (
	// ErrLengthMismatch indicates xs and ys have different lengths.
	ErrLengthMismatch = errors.New("core: xs and ys must have the same length")

	// ErrTooFewPoints indicates fewer than two sample points were supplied.
	ErrTooFewPoints = errors.New("core: at least two sample points are required")

	// ErrNaNInf indicates a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("core: NaN or Inf encountered")

	// ErrDuplicateX indicates two sample points share the same x-coordinate.
	// Duplicate abscissae make divided differences undefined (division by a
	// zero x-span), so they are rejected at construction.
	ErrDuplicateX = errors.New("core: duplicate x value")

	// ErrBadStep indicates a zero or non-finite step for a uniform grid.
	ErrBadStep = errors.New("core: step must be finite and non-zero")
)
