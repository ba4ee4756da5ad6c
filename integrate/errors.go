package integrate

import "errors"

var (
	// ErrNilPoints is returned when the sample points are nil.
	ErrNilPoints = errors.New("integrate: sample points must not be nil")

	// ErrNilFunc is returned when a nil integrand is supplied.
	ErrNilFunc = errors.New("integrate: integrand must not be nil")

	// ErrEvenIntervals is returned by Simpson when the interval count is odd.
	ErrEvenIntervals = errors.New("integrate: Simpson's rule needs an even interval count")

	// ErrTripleIntervals is returned by Simpson38 when the interval count is
	// not divisible by 3.
	ErrTripleIntervals = errors.New("integrate: Simpson's 3/8 rule needs an interval count divisible by 3")

	// ErrSextupleIntervals is returned by Weddle when the interval count is
	// not divisible by 6.
	ErrSextupleIntervals = errors.New("integrate: Weddle's rule needs an interval count divisible by 6")

	// ErrBadNodeCount is returned when a quadrature node count is not positive.
	ErrBadNodeCount = errors.New("integrate: node count must be positive")

	// ErrSingular is returned when the Newton-Cotes moment system cannot be
	// solved (coincident nodes).
	ErrSingular = errors.New("integrate: moment system is singular")
)
