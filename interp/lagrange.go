package interp

import "github.com/katalvlaran/compmath/core"

// Lagrange interpolation:
//
//	L(x) = Σ y_i · l_i(x),  l_i(x) = Π_{j≠i} (x − x_j)/(x_i − x_j).
//
// No difference table is needed; each query costs O(N²). By default all
// points are used (order N−1); a lower requested order selects the window
// of order+1 consecutive nodes centered on the node nearest the query.

// lagrangeWindow returns the start of the node window for the given order.
func lagrangeWindow(pts *core.SamplePoints, x float64, order int) int {
	n := pts.Len()
	if order >= n-1 {
		return 0
	}
	start := pts.NearestIndex(x) - order/2
	if start < 0 {
		start = 0
	}
	if start > n-1-order {
		start = n - 1 - order
	}

	return start
}

// lagrangeValue evaluates the weighted sum directly over the window
// [start, start+count).
func lagrangeValue(pts *core.SamplePoints, x float64, start, count int) float64 {
	val := 0.0
	for i := start; i < start+count; i++ {
		li := 1.0
		for j := start; j < start+count; j++ {
			if j != i {
				li *= (x - pts.X(j)) / (pts.X(i) - pts.X(j))
			}
		}
		val += pts.Y(i) * li
	}

	return val
}

// lagrangePoly expands each basis polynomial l_i over the window and
// accumulates y_i·l_i into a power-basis polynomial in x, ready for
// term-by-term differentiation (product rule over the N−1 sub-factors).
func lagrangePoly(pts *core.SamplePoints, start, count int) poly {
	out := poly{0}
	for i := start; i < start+count; i++ {
		li := poly{1}
		denom := 1.0
		for j := start; j < start+count; j++ {
			if j != i {
				li = li.mulLinear(pts.X(j))
				denom *= pts.X(i) - pts.X(j)
			}
		}
		out = out.addScaled(li, pts.Y(i)/denom)
	}

	return out
}
