// Package interp implements the classical polynomial interpolation
// formulas over compmath sample points, their k-th derivative evaluators
// and a truncation-error estimate.
//
// 🚀 What is interp?
//
//	One evaluation entry point dispatched over a closed scheme set:
//	  • Lagrange            — direct weighted sum, any spacing
//	  • NewtonDivided       — divided differences, any spacing
//	  • NewtonForward       — uniform grid, anchored at the first node
//	  • NewtonBackward      — uniform grid, anchored at the last node
//	  • GaussForward        — centered zig-zag from the base node
//	  • GaussBackward       — centered zig-zag, mirrored
//	  • Stirling            — averaged Gauss pair, single base node
//	  • Bessel              — centered on a node pair
//
// ✨ Key properties:
//   - All schemes evaluate the unique interpolating polynomial, so at full
//     order they agree with NewtonDivided within floating tolerance.
//   - The node selector anchors centered schemes on the node admitting the
//     most difference orders, clamps to the interior at the boundary and
//     truncates the usable order instead of failing (extrapolation is
//     allowed; its growing error is reported by TruncationError, not by an
//     error value).
//   - Derivatives are coefficient-based: each series is expanded into a
//     power-basis polynomial and differentiated term-by-term, with the
//     chain-rule factor (1/h)ᵏ for fixed-step schemes.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/compmath/interp"
//
//	pts, _ := core.NewSamplePoints([]float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
//	res, err := interp.Evaluate(pts, 1.5, interp.Stirling, nil)
//	d1, err := interp.Derivative(pts, 1.0, 1, interp.NewtonForward, nil)
//	bound, err := interp.TruncationError(pts, 1.5, interp.NewtonDivided,
//	  &interp.Options{Order: 2})
//
// Errors:
//   - ErrInsufficientPoints    — requested order exceeds the table.
//   - ErrUnknownScheme         — Scheme value outside the closed set.
//   - difftab.ErrInvalidSpacing — fixed-step scheme on a non-uniform grid.
//
// Complexity: O(N²) per evaluation (table build dominates); N is expected
// to stay in the tens.
package interp
