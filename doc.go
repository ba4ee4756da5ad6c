// Package compmath is a reference toolkit of classical numerical-analysis
// algorithms (interpolation, finite-difference tables, quadrature,
// root-finding and error analysis) aimed at students and practitioners
// who need precise, readable implementations rather than a compute engine.
//
// 🚀 What is compmath?
//
//	A pure-function library that brings together:
//		• Sample points: validated, immutable (x, y) tables
//		• Difference tables: divided, forward, backward, central
//		• Interpolation: Lagrange, Newton (divided/forward/backward),
//		  Gauss forward/backward, Stirling, Bessel
//		• Derivatives: coefficient-based k-th derivatives of every scheme
//		• Error analysis: truncation estimates, condition numbers,
//		  approximate numbers with error propagation
//		• Quadrature: rectangle, midpoint, trapezoid, Simpson, Weddle,
//		  Newton–Cotes, Gauss–Legendre
//		• Solvers: tangent (Newton), secant (chord), Thomas tridiagonal
//		• Splines: cubic spline with four boundary conditions
//
// ✨ Why choose compmath?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – no global state, no hidden randomness
//   - Explicit errors – sentinel errors per package, matched via errors.Is
//   - Safe for concurrent use – every operation is a pure function of its
//     inputs; tables and splines are immutable once built
//
// Under the hood, everything is organized under seven subpackages:
//
//	core/      — SamplePoints data model and shared numeric policy
//	difftab/   — finite- and divided-difference table builders
//	interp/    — interpolation schemes, node selection, derivatives
//	numerr/    — condition numbers, error bounds, decimal rounding
//	integrate/ — composite quadrature rules
//	solve/     — root-finding and tridiagonal elimination
//	spline/    — cubic spline interpolation
//
// Point counts are expected to be small (tens, not millions); the library
// favors textbook fidelity over large-dataset performance.
//
//	go get github.com/katalvlaran/compmath
package compmath
