package integrate

import "github.com/katalvlaran/compmath/core"

// Simpson integrates tabulated data with Simpson's 1/3 rule, applied to
// consecutive pairs of subintervals:
//
//	∫ ≈ Σ (x_{i+2} − x_i)/6 · (y_i + 4y_{i+1} + y_{i+2})
//
// The interval count must be even (an odd number of nodes); exact for
// cubic data on each uniform pair.
func Simpson(pts *core.SamplePoints) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}
	n := pts.Len() - 1
	if n%2 != 0 {
		return 0, ErrEvenIntervals
	}

	sum := 0.0
	for i := 0; i < n; i += 2 {
		h := pts.X(i+2) - pts.X(i)
		sum += h / 6 * (pts.Y(i) + 4*pts.Y(i+1) + pts.Y(i+2))
	}

	return sum, nil
}

// Simpson38 integrates tabulated data with Simpson's 3/8 rule, applied to
// groups of three subintervals:
//
//	∫ ≈ Σ 3h/8 · (y_i + 3y_{i+1} + 3y_{i+2} + y_{i+3}),  h = (x_{i+3} − x_i)/3
//
// The interval count must be divisible by 3.
func Simpson38(pts *core.SamplePoints) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}
	n := pts.Len() - 1
	if n%3 != 0 {
		return 0, ErrTripleIntervals
	}

	sum := 0.0
	for i := 0; i < n; i += 3 {
		h := (pts.X(i+3) - pts.X(i)) / 3
		sum += 3 * h / 8 * (pts.Y(i) + 3*pts.Y(i+1) + 3*pts.Y(i+2) + pts.Y(i+3))
	}

	return sum, nil
}
