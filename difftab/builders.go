package difftab

import (
	"github.com/katalvlaran/compmath/core"
)

// Divided builds the divided-difference table
//
//	rows[k][i] = (rows[k-1][i+1] − rows[k-1][i]) / (x_{i+k} − x_i).
//
// Spacing may be arbitrary; duplicate x-values are already rejected by
// core.NewSamplePoints, so the x-span denominators are never zero.
func Divided(pts *core.SamplePoints) (*Table, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}

	t := &Table{kind: KindDivided, xs: pts.Xs(), rows: triangle(pts.Ys())}
	for k := 1; k < len(t.rows); k++ {
		prev := t.rows[k-1]
		for i := range t.rows[k] {
			t.rows[k][i] = (prev[i+1] - prev[i]) / (t.xs[i+k] - t.xs[i])
		}
	}

	return t, nil
}

// Forward builds the raw forward-difference table
//
//	rows[k][i] = rows[k-1][i+1] − rows[k-1][i]
//
// over a uniform grid. Returns ErrInvalidSpacing if consecutive spans differ
// beyond the configured epsilon (see WithEpsilon).
func Forward(pts *core.SamplePoints, opts ...Option) (*Table, error) {
	return fixedStep(pts, KindForward, opts)
}

// Backward builds the same uniform triangle marked for trailing-diagonal
// (∇) access. Returns ErrInvalidSpacing on non-uniform grids.
func Backward(pts *core.SamplePoints, opts ...Option) (*Table, error) {
	return fixedStep(pts, KindBackward, opts)
}

// Central builds the same uniform triangle marked for interleaved-diagonal
// access by the centered schemes (Gauss, Stirling, Bessel).
// Returns ErrInvalidSpacing on non-uniform grids.
func Central(pts *core.SamplePoints, opts ...Option) (*Table, error) {
	return fixedStep(pts, KindCentral, opts)
}

// fixedStep is the shared constructor behind Forward, Backward and Central:
// the three families store the identical triangle and differ only in how
// consumers index it.
func fixedStep(pts *core.SamplePoints, kind Kind, opts []Option) (*Table, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}
	o := gatherOptions(opts...)

	h, uniform := pts.Step(o.eps)
	if !uniform {
		return nil, ErrInvalidSpacing
	}

	t := &Table{kind: kind, xs: pts.Xs(), h: h, rows: triangle(pts.Ys())}
	for k := 1; k < len(t.rows); k++ {
		prev := t.rows[k-1]
		for i := range t.rows[k] {
			t.rows[k][i] = prev[i+1] - prev[i]
		}
	}

	return t, nil
}

// triangle allocates the N-row triangular storage with rows[0] = ys.
func triangle(ys []float64) [][]float64 {
	rows := make([][]float64, len(ys))
	rows[0] = ys
	for k := 1; k < len(ys); k++ {
		rows[k] = make([]float64, len(ys)-k)
	}

	return rows
}
