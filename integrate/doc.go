// Package integrate approximates definite integrals of tabulated data and
// of callable integrands.
//
// 🚀 Rule ladder (tabulated data, increasing accuracy):
//
//	• Rectangle (left/right) — first order, baseline.
//	• Midpoint / Trapezoid   — exact for linear data.
//	• Simpson                — 1/3 rule over interval pairs; exact for cubics.
//	• Simpson38              — 3/8 rule over interval triples.
//	• Weddle                 — 7-node rule over interval sextuples; exact to degree 5.
//	• NewtonCotes            — general weights from the Vandermonde moment
//	  system; handles unequal spacing and reduces to the rules above on
//	  small uniform grids.
//
// For a callable integrand, GaussLegendre picks its own nodes and reaches
// degree 2n−1 exactness with n evaluations.
//
// ⚙️ Usage:
//
//	pts, _ := core.NewSamplePoints(xs, ys)
//	area, err := integrate.Simpson(pts)
//
//	val, err := integrate.GaussLegendre(math.Cos, 0, 1, 5)
//
// Composite rules carry interval-count preconditions (even, divisible by
// 3, divisible by 6) and fail with the matching sentinel when violated.
package integrate
