// Package spline builds C² cubic splines through sample points, with
// evaluation, analytic derivatives and analytic definite integrals.
//
// 🚀 Why a spline?
//
//	A single interpolating polynomial through many nodes oscillates
//	(Runge's phenomenon); a cubic spline keeps the fit local. Each segment
//	is a cubic in Hermite form and the node slopes are solved from one
//	tridiagonal-shaped system so curvature is continuous everywhere.
//
// Boundary conditions close the system:
//
//	• NotAKnot    — third-derivative continuity at the outermost interior
//	  nodes (default; reproduces a global cubic exactly).
//	• Clamped     — caller-supplied end slopes.
//	• SecondDeriv — caller-supplied end curvatures (0, 0 = natural spline).
//	• Periodic    — matching slope and curvature across joined ends.
//
// ⚙️ Usage:
//
//	pts, _ := core.NewSamplePoints(xs, ys)
//	sp, err := spline.New(pts)                       // not-a-knot
//	sp, err = spline.New(pts, spline.WithEndDerivatives(0, 32))
//
//	y := sp.Interpolate(1.7)
//	d, err := sp.Derivative(1.7, 2)
//	area := sp.Integrate(0, 4)
//
// Queries outside the node range extend the end segments; integration is
// clipped to the node range. Splines are immutable after New and safe for
// concurrent use.
package spline
