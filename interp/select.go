package interp

import (
	"math"

	"github.com/katalvlaran/compmath/core"
	"github.com/katalvlaran/compmath/difftab"
)

// SelectBase chooses the anchor node and local parameter for a scheme at a
// query point. eps ≤ 0 means core.DefaultEpsilon.
//
// For the centered schemes the base is the node admitting the most
// difference orders (the "enough neighbors on the required sides"
// constraint of each zig-zag pattern), with ties broken by |x − x_p| and
// then by the lower index. At the boundary this clamps the anchor to the
// interior and truncates MaxOrder instead of failing; out-of-range queries
// are permitted (extrapolation) and never error here.
//
// Newton forward/backward anchor at the first/last node; Lagrange and
// Newton-divided anchor at the nearest node with S the direct x-distance.
func SelectBase(pts *core.SamplePoints, x float64, scheme Scheme, eps float64) (NodeSelection, error) {
	if pts == nil {
		return NodeSelection{}, ErrNilPoints
	}
	if eps <= 0 {
		eps = core.DefaultEpsilon
	}
	n := pts.Len()

	if !scheme.fixedStep() {
		switch scheme {
		case Lagrange, NewtonDivided:
			p := pts.NearestIndex(x)

			return NodeSelection{Base: p, S: x - pts.X(p), MaxOrder: n - 1}, nil
		default:
			return NodeSelection{}, ErrUnknownScheme
		}
	}

	h, uniform := pts.Step(eps)
	if !uniform {
		return NodeSelection{}, difftab.ErrInvalidSpacing
	}

	switch scheme {
	case NewtonForward:
		return NodeSelection{Base: 0, S: (x - pts.X(0)) / h, H: h, MaxOrder: n - 1}, nil
	case NewtonBackward:
		return NodeSelection{Base: n - 1, S: (x - pts.X(n-1)) / h, H: h, MaxOrder: n - 1}, nil
	}

	best := NodeSelection{Base: -1, MaxOrder: -1}
	bestDist := math.Inf(1)
	for p := 0; p < n; p++ {
		m := maxUsableOrder(scheme, p, n)
		if m < 0 {
			continue
		}
		d := math.Abs(x - pts.X(p))
		if m > best.MaxOrder || (m == best.MaxOrder && d < bestDist) {
			best = NodeSelection{Base: p, MaxOrder: m}
			bestDist = d
		}
	}
	best.H = h
	best.S = (x - pts.X(best.Base)) / h

	return best, nil
}

// maxUsableOrder reports the highest series order scheme supports when
// anchored at p over n points, or -1 if even the zeroth term is invalid.
// Each formula consumes specific table positions per order k; the first k
// whose position falls off the triangle truncates the series.
func maxUsableOrder(scheme Scheme, p, n int) int {
	switch scheme {
	case GaussForward:
		for k := 1; k < n; k++ {
			if i := p - k/2; i < 0 || i > n-k-1 {
				return k - 1
			}
		}

		return n - 1
	case GaussBackward:
		for k := 1; k < n; k++ {
			if i := p - (k+1)/2; i < 0 || i > n-k-1 {
				return k - 1
			}
		}

		return n - 1
	case Stirling:
		for k := 1; k < n; k++ {
			if k%2 == 1 {
				// odd terms average rows[k][p-(k+1)/2] and rows[k][p-(k-1)/2]
				if p-(k+1)/2 < 0 || p-(k-1)/2 > n-k-1 {
					return k - 1
				}
			} else if i := p - k/2; i < 0 || i > n-k-1 {
				return k - 1
			}
		}

		return n - 1
	case Bessel:
		// the zeroth term already averages y_p and y_{p+1}
		if p > n-2 {
			return -1
		}
		for k := 1; k < n; k++ {
			if k%2 == 1 {
				if i := p - (k-1)/2; i < 0 || i > n-k-1 {
					return k - 1
				}
			} else if i := p - k/2; i < 0 || i > n-k-2 {
				return k - 1
			}
		}

		return n - 1
	default:
		return n - 1
	}
}
