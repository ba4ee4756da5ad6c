package numerr

import "math"

// Classical absolute/relative error calculus over approximate values.
// Place-value analysis runs on the fixed-point decimal rendering of the
// value (see decimal.go), matching the hand-calculation convention that a
// printed number carries half a unit of its last written place.

// AbsErrorByExact returns the absolute error of value by definition,
// |exact − value|.
func AbsErrorByExact(value, exact float64) float64 {
	return math.Abs(exact - value)
}

// AbsErrorByDigits returns the absolute error implied by value having n
// valid significant digits: five units of the place following the n-th
// significant digit.
func AbsErrorByDigits(value float64, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrBadDigits
	}
	lead, ok := leadingExponent(value)
	if !ok {
		return 0, nil
	}

	return 5 * math.Pow(10, float64(lead-n)), nil
}

// AbsErrorFromRel converts a relative error to absolute, |value|·rel.
func AbsErrorFromRel(value, rel float64) float64 {
	if value == 0 {
		return 0
	}

	return math.Abs(value) * math.Abs(rel)
}

// DefaultAbsError returns the conventional absolute error of a written
// value: half a unit of its last rendered decimal place.
func DefaultAbsError(value float64) float64 {
	_, frac := decParts(value)

	return 5 * math.Pow(10, float64(-len(frac)-1))
}

// RelErrorByExact returns the relative error by definition,
// |(exact − value)/exact|. A zero exact value fails with ErrZeroValue.
func RelErrorByExact(value, exact float64) (float64, error) {
	if exact == 0 {
		return 0, ErrZeroValue
	}

	return math.Abs((exact - value) / exact), nil
}

// RelErrorByDigits returns the relative error implied by n valid
// significant digits of value.
func RelErrorByDigits(value float64, n int) (float64, error) {
	if value == 0 {
		return 0, ErrZeroValue
	}
	abs, err := AbsErrorByDigits(value, n)
	if err != nil {
		return 0, err
	}

	return abs / math.Abs(value), nil
}

// RelErrorFromAbs converts an absolute error to relative, abs/|value|.
func RelErrorFromAbs(value, abs float64) (float64, error) {
	if value == 0 {
		return 0, ErrZeroValue
	}

	return math.Abs(abs) / math.Abs(value), nil
}

// DefaultRelError returns the conventional relative error of a written
// value, DefaultAbsError(value)/|value|.
func DefaultRelError(value float64) (float64, error) {
	if value == 0 {
		return 0, ErrZeroValue
	}

	return DefaultAbsError(value) / math.Abs(value), nil
}
