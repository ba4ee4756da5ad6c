package difftab_test

import (
	"testing"

	"github.com/katalvlaran/compmath/core"
	"github.com/katalvlaran/compmath/difftab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoints(t *testing.T, xs, ys []float64) *core.SamplePoints {
	t.Helper()
	pts, err := core.NewSamplePoints(xs, ys)
	require.NoError(t, err)

	return pts
}

// TestDivided_Recurrence checks the divided-difference coefficients against
// hand-computed values for the worked dataset (0,1),(1,2),(2,0),(3,5).
func TestDivided_Recurrence(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
	tbl, err := difftab.Divided(pts)
	require.NoError(t, err)

	// f[x0,x1] = 1, f[x1,x2] = -2, f[x2,x3] = 5
	assert.InDelta(t, 1.0, tbl.Row(1)[0], 1e-12)
	assert.InDelta(t, -2.0, tbl.Row(1)[1], 1e-12)
	assert.InDelta(t, 5.0, tbl.Row(1)[2], 1e-12)

	// f[x0,x1,x2] = -1.5, f[x1,x2,x3] = 3.5, f[x0..x3] = 5/3
	assert.InDelta(t, -1.5, tbl.Row(2)[0], 1e-12)
	assert.InDelta(t, 3.5, tbl.Row(2)[1], 1e-12)
	assert.InDelta(t, 5.0/3.0, tbl.Row(3)[0], 1e-12)
}

// TestDivided_UnevenSpacing checks that divided tables accept non-uniform x.
func TestDivided_UnevenSpacing(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 3}, []float64{1, 2, 10})
	tbl, err := difftab.Divided(pts)
	require.NoError(t, err)

	// f[x0,x1] = 1, f[x1,x2] = 4, f[x0,x1,x2] = 1
	assert.InDelta(t, 1.0, tbl.Row(1)[0], 1e-12)
	assert.InDelta(t, 4.0, tbl.Row(1)[1], 1e-12)
	assert.InDelta(t, 1.0, tbl.Row(2)[0], 1e-12)
}

// TestFixedStep_SpacingValidation verifies that the fixed-step builders
// reject x = [0,1,3] but accept x = [0,1,2,3].
func TestFixedStep_SpacingValidation(t *testing.T) {
	bad := mustPoints(t, []float64{0, 1, 3}, []float64{1, 2, 0})
	good := mustPoints(t, []float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})

	_, err := difftab.Forward(bad)
	assert.ErrorIs(t, err, difftab.ErrInvalidSpacing)
	_, err = difftab.Backward(bad)
	assert.ErrorIs(t, err, difftab.ErrInvalidSpacing)
	_, err = difftab.Central(bad)
	assert.ErrorIs(t, err, difftab.ErrInvalidSpacing)

	_, err = difftab.Forward(good)
	assert.NoError(t, err)
}

// TestTable_TriangularInvariant verifies rows[k] has exactly N−k entries
// for every k in [0, N−1].
func TestTable_TriangularInvariant(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2, 3, 4}, []float64{1, 2, 0, 5, 3})

	div, err := difftab.Divided(pts)
	require.NoError(t, err)
	fwd, err := difftab.Forward(pts)
	require.NoError(t, err)

	for _, tbl := range []*difftab.Table{div, fwd} {
		assert.Equal(t, 4, tbl.Order())
		for k := 0; k <= tbl.Order(); k++ {
			assert.Equal(t, pts.Len()-k, tbl.Len(k), "row %d of %s table", k, tbl.Kind())
		}
	}
}

// TestTable_Kind verifies that each builder tags its table with the matching
// family constant and that the labels render for diagnostics.
func TestTable_Kind(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})

	div, err := difftab.Divided(pts)
	require.NoError(t, err)
	assert.Equal(t, difftab.KindDivided, div.Kind())
	assert.Equal(t, "divided", div.Kind().String())

	fwd, err := difftab.Forward(pts)
	require.NoError(t, err)
	assert.Equal(t, difftab.KindForward, fwd.Kind())
	assert.Equal(t, "forward", fwd.Kind().String())

	bwd, err := difftab.Backward(pts)
	require.NoError(t, err)
	assert.Equal(t, difftab.KindBackward, bwd.Kind())

	ctr, err := difftab.Central(pts)
	require.NoError(t, err)
	assert.Equal(t, difftab.KindCentral, ctr.Kind())
}

// TestForward_Edges checks the leading and trailing diagonals against
// hand-computed forward/backward differences.
func TestForward_Edges(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
	tbl, err := difftab.Forward(pts)
	require.NoError(t, err)

	// Δy: 1, -2, 5 ; Δ²y: -3, 7 ; Δ³y: 10
	assert.Equal(t, []float64{1, 1, -3, 10}, tbl.ForwardEdge())
	assert.Equal(t, []float64{5, 5, 7, 10}, tbl.BackwardEdge())
	assert.Equal(t, 1.0, tbl.Step())
}

// TestWithEpsilon verifies that a loose epsilon admits slightly perturbed
// grids and that the option constructor rejects nonsense.
func TestWithEpsilon(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2.000001}, []float64{1, 2, 0})

	_, err := difftab.Forward(pts)
	assert.ErrorIs(t, err, difftab.ErrInvalidSpacing)

	_, err = difftab.Forward(pts, difftab.WithEpsilon(1e-3))
	assert.NoError(t, err)

	assert.Panics(t, func() { difftab.WithEpsilon(-1) })
}

// TestTable_At verifies bounds-checked access.
func TestTable_At(t *testing.T) {
	pts := mustPoints(t, []float64{0, 1, 2}, []float64{1, 2, 0})
	tbl, err := difftab.Divided(pts)
	require.NoError(t, err)

	v, err := tbl.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, v, 1e-12)

	_, err = tbl.At(1, 2)
	assert.ErrorIs(t, err, difftab.ErrOutOfRange)
	_, err = tbl.At(3, 0)
	assert.ErrorIs(t, err, difftab.ErrOutOfRange)
}

// TestNilPoints verifies the nil-input sentinel.
func TestNilPoints(t *testing.T) {
	_, err := difftab.Divided(nil)
	assert.ErrorIs(t, err, difftab.ErrNilPoints)
	_, err = difftab.Central(nil)
	assert.ErrorIs(t, err, difftab.ErrNilPoints)
}
