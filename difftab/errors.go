package difftab

import "errors"

// Sentinel errors for table construction and access. Builders MUST return
// these sentinels; tests match them via errors.Is.
var (
	// ErrNilPoints indicates a nil *core.SamplePoints was passed to a builder.
	ErrNilPoints = errors.New("difftab: sample points are nil")

	// ErrInvalidSpacing indicates a fixed-step builder was given x-values
	// whose spacing is not constant within the configured epsilon.
	ErrInvalidSpacing = errors.New("difftab: x values are not equally spaced")

	// ErrOutOfRange indicates a row or position index outside the triangle.
	ErrOutOfRange = errors.New("difftab: index out of range")
)
