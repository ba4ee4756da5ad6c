package interp

import "errors"

// Sentinel errors for interpolation evaluation. Spacing violations surface
// as difftab.ErrInvalidSpacing from the underlying table builders.
var (
	// ErrNilPoints indicates a nil *core.SamplePoints was passed in.
	ErrNilPoints = errors.New("interp: sample points are nil")

	// ErrUnknownScheme indicates a Scheme value outside the closed set.
	ErrUnknownScheme = errors.New("interp: unknown interpolation scheme")

	// ErrInsufficientPoints indicates the requested order exceeds the
	// differences available to the scheme at the selected base node.
	ErrInsufficientPoints = errors.New("interp: requested order exceeds available differences")

	// ErrBadDerivativeOrder indicates a negative derivative order k.
	ErrBadDerivativeOrder = errors.New("interp: derivative order must be non-negative")

	// ErrBadOrder indicates a negative interpolation order in Options.
	ErrBadOrder = errors.New("interp: order must be non-negative")
)
