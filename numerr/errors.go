package numerr

import "errors"

var (
	// ErrNilFunc is returned when a nil function is supplied.
	ErrNilFunc = errors.New("numerr: function must not be nil")

	// ErrZeroStep is returned when the derivative step is zero or not finite.
	ErrZeroStep = errors.New("numerr: derivative step must be finite and non-zero")

	// ErrZeroValue is returned when a relative quantity is requested for a
	// zero value, or when f(x) vanishes at the conditioning point.
	ErrZeroValue = errors.New("numerr: value is zero")

	// ErrBadDigits is returned when a digit count is not positive.
	ErrBadDigits = errors.New("numerr: digit count must be positive")

	// ErrDivisionByZero is returned on division by an exact zero.
	ErrDivisionByZero = errors.New("numerr: division by zero")

	// ErrDomain is returned when an argument falls outside the domain of
	// the propagated function (negative square root, non-positive log).
	ErrDomain = errors.New("numerr: argument outside the function domain")
)
