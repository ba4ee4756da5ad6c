package core

import "math"

// Numeric policy shared across compmath. These constants are the single
// source of truth for zero-value behavior in the subpackages.
const (
	// DefaultEpsilon is the non-negative tolerance used for floating
	// comparisons (uniform-spacing checks, symmetry checks).
	DefaultEpsilon = 1e-9

	// DefaultDerivativeStep is the step used by numerical differentiation
	// when no analytic derivative is supplied.
	DefaultDerivativeStep = 1e-3
)

// SamplePoints is an immutable, validated table of (x_i, y_i) pairs.
//
// The x-values must be pairwise distinct; beyond that the order is preserved
// exactly as supplied (divided-difference interpolation tolerates unordered
// abscissae, while the fixed-step builders in difftab verify uniform spacing
// themselves). Once constructed, a SamplePoints is never mutated, so it may
// be shared freely between goroutines.
type SamplePoints struct {
	xs, ys []float64
}

// NewSamplePoints builds a SamplePoints from two parallel sequences.
//
// Returns ErrLengthMismatch, ErrTooFewPoints, ErrNaNInf or ErrDuplicateX
// on invalid input. The slices are copied; callers keep ownership.
func NewSamplePoints(xs, ys []float64) (*SamplePoints, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	if len(xs) < 2 {
		return nil, ErrTooFewPoints
	}
	for i := range xs {
		if !isFinite(xs[i]) || !isFinite(ys[i]) {
			return nil, ErrNaNInf
		}
	}
	if hasDuplicate(xs) {
		return nil, ErrDuplicateX
	}

	sp := &SamplePoints{
		xs: make([]float64, len(xs)),
		ys: make([]float64, len(ys)),
	}
	copy(sp.xs, xs)
	copy(sp.ys, ys)

	return sp, nil
}

// FromPairs builds a SamplePoints from a sequence of (x, y) pairs.
func FromPairs(pairs [][2]float64) (*SamplePoints, error) {
	xs := make([]float64, len(pairs))
	ys := make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i], ys[i] = p[0], p[1]
	}

	return NewSamplePoints(xs, ys)
}

// UniformPoints builds a SamplePoints on the uniform grid
// x_i = x0 + i·h for the supplied y-values.
//
// Returns ErrBadStep if h is zero or non-finite.
func UniformPoints(x0, h float64, ys []float64) (*SamplePoints, error) {
	if h == 0 || !isFinite(h) {
		return nil, ErrBadStep
	}
	xs := make([]float64, len(ys))
	for i := range ys {
		xs[i] = x0 + float64(i)*h
	}

	return NewSamplePoints(xs, ys)
}

// Len reports the number of sample points.
func (sp *SamplePoints) Len() int { return len(sp.xs) }

// X returns the i-th abscissa.
func (sp *SamplePoints) X(i int) float64 { return sp.xs[i] }

// Y returns the i-th ordinate.
func (sp *SamplePoints) Y(i int) float64 { return sp.ys[i] }

// Xs returns a copy of the x-values.
func (sp *SamplePoints) Xs() []float64 {
	out := make([]float64, len(sp.xs))
	copy(out, sp.xs)

	return out
}

// Ys returns a copy of the y-values.
func (sp *SamplePoints) Ys() []float64 {
	out := make([]float64, len(sp.ys))
	copy(out, sp.ys)

	return out
}

// Step reports the common spacing h = x_1 − x_0 and whether all consecutive
// spans match it within eps. Fixed-step interpolation formulas are valid
// only when uniform is true.
func (sp *SamplePoints) Step(eps float64) (h float64, uniform bool) {
	h = sp.xs[1] - sp.xs[0]
	for i := 1; i < len(sp.xs)-1; i++ {
		if math.Abs((sp.xs[i+1]-sp.xs[i])-h) > eps {
			return h, false
		}
	}

	return h, true
}

// NearestIndex returns the index p minimizing |x − x_p|. Ties resolve to
// the lower index. Point counts are small, so a linear scan suffices.
func (sp *SamplePoints) NearestIndex(x float64) int {
	best, bestDist := 0, math.Abs(x-sp.xs[0])
	for i := 1; i < len(sp.xs); i++ {
		if d := math.Abs(x - sp.xs[i]); d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// hasDuplicate reports whether xs contains two equal values. Quadratic,
// acceptable for the tens-of-points inputs this library targets.
func hasDuplicate(xs []float64) bool {
	for i := 0; i < len(xs); i++ {
		for j := i + 1; j < len(xs); j++ {
			if xs[i] == xs[j] {
				return true
			}
		}
	}

	return false
}
