package numerr

import (
	"math"

	"github.com/robaho/fixed"
)

// RoundMode selects which digit class RoundTo counts.
type RoundMode int

const (
	// Significant counts every digit from the first non-zero one.
	Significant RoundMode = iota

	// Valid counts digits whose place survives the absolute error.
	Valid

	// Doubtful counts digits contaminated by the absolute error.
	Doubtful
)

// SignificantDigits returns the significant digits of v in writing order.
func SignificantDigits(v float64) []int {
	intPart, fracPart := decParts(v)
	digits := intPart + fracPart
	out := make([]int, 0, len(digits))
	seen := false
	for i := 0; i < len(digits); i++ {
		if !seen && digits[i] == '0' {
			continue
		}
		seen = true
		out = append(out, int(digits[i]-'0'))
	}

	return out
}

// ValidDigits returns the digits of v whose place value is certain given
// the absolute error: those with half a unit of their place ≥ absErr.
// A zero absErr means the conventional DefaultAbsError(v).
func ValidDigits(v, absErr float64) []int {
	if absErr == 0 {
		absErr = DefaultAbsError(v)
	}
	var out []int
	for i, e := range placeExponents(v) {
		if validAt(e, absErr) {
			out = append(out, digitAt(v, i))
		}
	}

	return out
}

// DoubtfulDigits returns the digits of v contaminated by the absolute
// error, the complement of ValidDigits over the rendered digits.
func DoubtfulDigits(v, absErr float64) []int {
	if absErr == 0 {
		absErr = DefaultAbsError(v)
	}
	var out []int
	for i, e := range placeExponents(v) {
		if !validAt(e, absErr) {
			out = append(out, digitAt(v, i))
		}
	}

	return out
}

// RoundTo rounds v so that exactly n digits of the requested class remain.
//
// Rounding never reaches into the integer part: when the cut would land at
// or left of the decimal point, v is returned unchanged (the written
// integer digits are kept as-is). absErr is consulted for the Valid and
// Doubtful modes; zero means DefaultAbsError(v).
func RoundTo(v float64, mode RoundMode, n int, absErr float64) (float64, error) {
	if n <= 0 {
		return 0, ErrBadDigits
	}
	if absErr == 0 {
		absErr = DefaultAbsError(v)
	}

	intPart, fracPart := decParts(v)
	digits := intPart + fracPart
	exps := placeExponents(v)

	count := 0
	cut := -1 // index of the first digit to drop
	seen := false
	for i := 0; i < len(digits); i++ {
		if count == n {
			cut = i
			break
		}
		switch mode {
		case Significant:
			if !seen && digits[i] == '0' {
				continue
			}
			seen = true
			count++
		case Valid:
			if validAt(exps[i], absErr) {
				count++
			}
		case Doubtful:
			if !validAt(exps[i], absErr) {
				count++
			}
		}
	}
	if cut < 0 {
		return v, nil // fewer than n digits of the class exist
	}

	decimals := -exps[cut] - 1 // the cut digit sits one place below the last kept
	if decimals <= 0 {
		return v, nil
	}

	rounded := fixed.NewF(math.Abs(v)).Round(decimals).Float()
	if v < 0 {
		rounded = -rounded
	}

	return rounded, nil
}
