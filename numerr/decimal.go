package numerr

import (
	"math"
	"strings"

	"github.com/robaho/fixed"
)

// The digit-classification helpers reason about the decimal rendering of a
// value, not its binary representation. robaho/fixed supplies a
// deterministic 7-decimal fixed-point form, which keeps place-value
// arithmetic exact where float formatting would wobble.

// decParts splits |v| into its integer and fractional digit strings.
// Trailing fractional zeros are not rendered by the fixed-point layer, so
// the fractional length reflects the written precision of the value.
func decParts(v float64) (intPart, fracPart string) {
	s := fixed.NewF(math.Abs(v)).String()
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return s[:dot], s[dot+1:]
	}

	return s, ""
}

// leadingExponent returns the decimal place exponent of the first
// significant digit of v (0 for units, 1 for tens, -1 for tenths) and
// false when v renders as zero.
func leadingExponent(v float64) (int, bool) {
	intPart, fracPart := decParts(v)
	digits := intPart + fracPart
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return len(intPart) - 1 - i, true
		}
	}

	return 0, false
}

// placeExponents lists the decimal place exponent of every rendered digit
// of v, in writing order.
func placeExponents(v float64) []int {
	intPart, fracPart := decParts(v)
	exps := make([]int, 0, len(intPart)+len(fracPart))
	for i := 0; i < len(intPart)+len(fracPart); i++ {
		exps = append(exps, len(intPart)-1-i)
	}

	return exps
}

// digitAt returns the i-th rendered digit of |v| as an int.
func digitAt(v float64, i int) int {
	intPart, fracPart := decParts(v)
	digits := intPart + fracPart

	return int(digits[i] - '0')
}

// validAt reports whether the digit at place exponent e is valid for the
// given absolute error: a digit is valid when the error does not exceed
// half a unit of its place.
func validAt(e int, absErr float64) bool {
	return 5*math.Pow(10, float64(e-1)) >= absErr
}
