// Package core defines the SamplePoints data model shared by every
// compmath subpackage, together with the library-wide numeric policy.
//
// 🚀 What is core?
//
//	SamplePoints is a validated, immutable table of (x, y) pairs:
//	  • built once from caller-supplied sequences,
//	  • never mutated afterward,
//	  • safe to share across goroutines without locking.
//
// All validation happens at the construction boundary: mismatched lengths,
// fewer than two points, NaN/Inf values and duplicate x-values are rejected
// with sentinel errors, so downstream algorithms can assume a well-formed
// table.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/compmath/core"
//
//	pts, err := core.NewSamplePoints(
//	  []float64{0, 1, 2, 3},
//	  []float64{1, 2, 0, 5},
//	)
//	if err != nil {
//	  // handle ErrLengthMismatch, ErrTooFewPoints, ErrNaNInf, ErrDuplicateX
//	}
//	h, uniform := pts.Step(core.DefaultEpsilon)
//
// See examples in example_test.go.
package core
