package solve

import "errors"

var (
	// ErrNilFunc is returned when a nil function is supplied.
	ErrNilFunc = errors.New("solve: function must not be nil")

	// ErrZeroDerivative is returned by Tangent when f'(x) vanishes at an
	// iterate and the tangent has no x-intercept.
	ErrZeroDerivative = errors.New("solve: derivative is zero at the iterate")

	// ErrFlatSecant is returned by Secant when two iterates share the same
	// function value and the chord has no x-intercept.
	ErrFlatSecant = errors.New("solve: equal function values, the chord is horizontal")

	// ErrMaxIterations is returned when the iteration limit is reached
	// before the convergence tolerance is met.
	ErrMaxIterations = errors.New("solve: no convergence within the iteration limit")

	// ErrNoSignChange is returned by SignChange when no subinterval of the
	// search range brackets a root.
	ErrNoSignChange = errors.New("solve: no sign change in the search range")

	// ErrBadStep is returned when a scan step is negative or not finite.
	ErrBadStep = errors.New("solve: step must be positive and finite")

	// ErrDimensionMismatch is returned by Tridiagonal when the diagonal
	// lengths do not agree with the system size.
	ErrDimensionMismatch = errors.New("solve: diagonal lengths do not match the system size")
)
