package spline

import "errors"

var (
	// ErrNilPoints is returned when the sample points are nil.
	ErrNilPoints = errors.New("spline: sample points must not be nil")

	// ErrTooFewPoints is returned when fewer than three nodes are supplied.
	ErrTooFewPoints = errors.New("spline: at least 3 points are required")

	// ErrNotIncreasing is returned when the x-values are not strictly
	// increasing.
	ErrNotIncreasing = errors.New("spline: x values must be strictly increasing")

	// ErrMissingDerivatives is returned for a clamped boundary without end
	// derivatives.
	ErrMissingDerivatives = errors.New("spline: clamped boundary needs end derivatives")

	// ErrMissingSecondDerivs is returned for a second-derivative boundary
	// without end values.
	ErrMissingSecondDerivs = errors.New("spline: second-derivative boundary needs end values")

	// ErrNotPeriodic is returned for a periodic boundary when the first and
	// last y-values differ.
	ErrNotPeriodic = errors.New("spline: periodic boundary needs equal end values")

	// ErrBadOrder is returned when a derivative order is outside 1..3.
	ErrBadOrder = errors.New("spline: derivative order must be 1, 2 or 3")

	// ErrSingular is returned when the slope system cannot be solved.
	ErrSingular = errors.New("spline: boundary system is singular")
)
