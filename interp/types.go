// Package interp defines the scheme enumeration, evaluation options and
// result types for the interpolation evaluators.
//
// Every public entry point is a pure function of its inputs: nothing is
// cached, nothing is mutated, and independent evaluations may run
// concurrently without locking.
package interp

import "github.com/katalvlaran/compmath/core"

// Scheme selects an interpolation formula. The set is closed: every variant
// is dispatched through Evaluate/Derivative/TruncationError, and an
// out-of-range value yields ErrUnknownScheme.
//
//   - Lagrange       — direct weighted sum over all nodes; no table.
//   - NewtonDivided  — Newton's general formula on divided differences;
//     tolerates unequal spacing.
//   - NewtonForward  — Newton-Gregory forward formula anchored at x₀.
//   - NewtonBackward — Newton-Gregory backward formula anchored at xₙ.
//   - GaussForward   — centered formula zig-zagging forward from the base.
//   - GaussBackward  — centered formula zig-zagging backward from the base.
//   - Stirling       — mean of the two Gauss formulas; best near the base
//     with an odd number of points.
//   - Bessel         — centered on a node pair; best halfway between the
//     two central nodes.
type Scheme int

const (
	// Lagrange is the direct basis-polynomial weighted sum.
	Lagrange Scheme = iota

	// NewtonDivided is Newton's divided-difference formula.
	NewtonDivided

	// NewtonForward is the Newton-Gregory forward-difference formula.
	NewtonForward

	// NewtonBackward is the Newton-Gregory backward-difference formula.
	NewtonBackward

	// GaussForward is the Gauss forward central-difference formula.
	GaussForward

	// GaussBackward is the Gauss backward central-difference formula.
	GaussBackward

	// Stirling is Stirling's central-difference formula.
	Stirling

	// Bessel is Bessel's central-difference formula.
	Bessel
)

// String implements fmt.Stringer for diagnostics.
func (s Scheme) String() string {
	switch s {
	case Lagrange:
		return "lagrange"
	case NewtonDivided:
		return "newton-divided"
	case NewtonForward:
		return "newton-forward"
	case NewtonBackward:
		return "newton-backward"
	case GaussForward:
		return "gauss-forward"
	case GaussBackward:
		return "gauss-backward"
	case Stirling:
		return "stirling"
	case Bessel:
		return "bessel"
	default:
		return "unknown"
	}
}

// central reports whether the scheme anchors on a selected base node.
func (s Scheme) central() bool {
	return s == GaussForward || s == GaussBackward || s == Stirling || s == Bessel
}

// fixedStep reports whether the scheme requires a uniform grid.
func (s Scheme) fixedStep() bool {
	return s == NewtonForward || s == NewtonBackward || s.central()
}

// Options configures an evaluation.
//
// Order — polynomial order to use. 0 means "maximum order the table
// supports at the selected base node" (the documented default; tests pin
// this choice). A positive Order below the maximum yields a
// controlled-degree fit; above it, ErrInsufficientPoints.
//
// Eps — tolerance for the uniform-spacing check of fixed-step schemes.
type Options struct {
	Order int
	Eps   float64
}

// DefaultOptions returns the documented defaults: maximum usable order and
// core.DefaultEpsilon spacing tolerance.
func DefaultOptions() Options {
	return Options{Order: 0, Eps: core.DefaultEpsilon}
}

// Result is one ephemeral interpolation answer.
type Result struct {
	// Value is the interpolated estimate at the query point.
	Value float64

	// Order is the polynomial order actually used.
	Order int

	// Base is the anchor node index the formula expanded from.
	Base int
}

// NodeSelection locates a formula on the sample grid for one query point.
// Recomputed per query; never stored.
type NodeSelection struct {
	// Base is the anchor index p.
	Base int

	// S is the local parameter: (x − x_p)/h for fixed-step schemes, the
	// direct x-distance x − x_p otherwise.
	S float64

	// H is the grid step (0 for schemes that allow unequal spacing).
	H float64

	// MaxOrder is the highest series order the table supports at Base;
	// boundary anchors reduce it rather than fail (graceful truncation).
	MaxOrder int
}
