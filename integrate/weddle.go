package integrate

import "github.com/katalvlaran/compmath/core"

// weddleWeights is the 7-node pattern of Weddle's rule.
var weddleWeights = [7]float64{1, 5, 1, 6, 1, 5, 1}

// Weddle integrates tabulated data with Weddle's rule, applied to groups
// of six subintervals:
//
//	∫ ≈ Σ 3h/10 · (y₀ + 5y₁ + y₂ + 6y₃ + y₄ + 5y₅ + y₆),  h = (x₆ − x₀)/6
//
// The interval count must be divisible by 6; exact for degree ≤ 5 data on
// each uniform group.
func Weddle(pts *core.SamplePoints) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}
	n := pts.Len() - 1
	if n%6 != 0 {
		return 0, ErrSextupleIntervals
	}

	sum := 0.0
	for i := 0; i < n; i += 6 {
		h := (pts.X(i+6) - pts.X(i)) / 6
		group := 0.0
		for j, w := range weddleWeights {
			group += w * pts.Y(i+j)
		}
		sum += 3 * h / 10 * group
	}

	return sum, nil
}
