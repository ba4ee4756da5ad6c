// Package difftab builds the finite- and divided-difference tables that
// underlie Newton, Gauss, Stirling and Bessel interpolation.
//
// 🚀 What is a difference table?
//
//	A triangular structure rows[k][i] where rows[0] holds the raw y-values
//	and rows[k][i] is the k-th difference rooted at position i:
//	  • divided:    rows[k][i] = (rows[k-1][i+1] − rows[k-1][i]) / (x_{i+k} − x_i)
//	    (supports unequal spacing; Newton's general formula),
//	  • fixed-step: rows[k][i] = rows[k-1][i+1] − rows[k-1][i]
//	    (requires equally spaced x; Newton-Gregory, Gauss, Stirling, Bessel).
//
// The forward, backward and central families share the same triangle; they
// differ only in which diagonal an interpolation formula walks. Forward
// formulas read rows[k][0], backward formulas rows[k][len−1], and the
// centered formulas interleave diagonals around a base node.
//
// Invariant: rows[k] has exactly N−k entries for N sample points, for every
// k in [0, N−1]. Tables are built once per SamplePoints set and are
// read-only afterward.
//
// ⚠️ Numerical caveat: differencing amplifies noise as k grows. Callers
// working with measured data should bound the order they consume.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/compmath/core"
//	  "github.com/katalvlaran/compmath/difftab"
//	)
//
//	pts, _ := core.NewSamplePoints([]float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
//	fwd, err := difftab.Forward(pts)        // uniform spacing enforced
//	div, err := difftab.Divided(pts)        // arbitrary spacing
//	top := fwd.ForwardEdge()                // Δ⁰y₀, Δ¹y₀, Δ²y₀, ...
//
// Complexity: O(N²) time and memory per table.
package difftab
