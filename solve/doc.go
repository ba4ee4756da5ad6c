// Package solve provides classical equation solvers: Newton and chord
// iterations for f(x) = 0, bracketing by sign-change scan, and the Thomas
// algorithm for tridiagonal linear systems.
//
// 🚀 Picking a method:
//
//	• Tangent — quadratic convergence near a simple root; needs f' (an
//	  analytic derivative, or a finite-difference fallback when nil).
//	• Secant — no derivative, superlinear convergence; start it from a
//	  bracketing interval found by SignChange.
//	• Tridiagonal — O(n) elimination for banded systems, the workhorse
//	  behind cubic-spline slope equations.
//
// ⚙️ Usage:
//
//	f := func(x float64) float64 { return x*x - 2 }
//	root, iters, err := solve.Tangent(f, nil, 1.5, nil)
//	// root ≈ √2 after a handful of iterations
//
//	lo, hi, err := solve.SignChange(f, 0, 2, 0.1)
//	root, _, err = solve.Secant(f, lo, hi, nil)
//
// Iteration limits and tolerances come from Options; nil means
// DefaultOptions(). All failures are sentinel errors, matched with
// errors.Is.
package solve
