package core_test

import (
	"testing"

	"github.com/katalvlaran/compmath/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSamplePoints_LengthMismatch verifies that parallel slices of
// different lengths are rejected.
func TestNewSamplePoints_LengthMismatch(t *testing.T) {
	_, err := core.NewSamplePoints([]float64{0, 1}, []float64{1})
	assert.ErrorIs(t, err, core.ErrLengthMismatch)
}

// TestNewSamplePoints_TooFewPoints verifies the two-point minimum.
func TestNewSamplePoints_TooFewPoints(t *testing.T) {
	_, err := core.NewSamplePoints([]float64{0}, []float64{1})
	assert.ErrorIs(t, err, core.ErrTooFewPoints)
}

// TestNewSamplePoints_DuplicateX verifies that duplicate abscissae are
// rejected at construction, even when not adjacent.
func TestNewSamplePoints_DuplicateX(t *testing.T) {
	_, err := core.NewSamplePoints([]float64{0, 1, 0}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, core.ErrDuplicateX)
}

// TestNewSamplePoints_NaNInf verifies that non-finite values are rejected.
func TestNewSamplePoints_NaNInf(t *testing.T) {
	nan := 0.0
	nan /= nan

	_, err := core.NewSamplePoints([]float64{0, nan}, []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrNaNInf)

	_, err = core.NewSamplePoints([]float64{0, 1}, []float64{1, nan})
	assert.ErrorIs(t, err, core.ErrNaNInf)
}

// TestSamplePoints_Immutability verifies that the constructor copies its
// inputs and the accessors return defensive copies.
func TestSamplePoints_Immutability(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{1, 2, 0}
	pts, err := core.NewSamplePoints(xs, ys)
	require.NoError(t, err)

	xs[0] = 99
	assert.Equal(t, 0.0, pts.X(0), "constructor must copy xs")

	got := pts.Xs()
	got[1] = 99
	assert.Equal(t, 1.0, pts.X(1), "Xs must return a copy")
}

// TestFromPairs verifies construction from (x, y) pairs.
func TestFromPairs(t *testing.T) {
	pts, err := core.FromPairs([][2]float64{{0, 1}, {1, 2}, {2, 0}})
	require.NoError(t, err)
	assert.Equal(t, 3, pts.Len())
	assert.Equal(t, 2.0, pts.Y(1))
}

// TestUniformPoints verifies grid construction and step validation.
func TestUniformPoints(t *testing.T) {
	pts, err := core.UniformPoints(1, 0.5, []float64{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2.0, pts.X(2))

	_, err = core.UniformPoints(1, 0, []float64{1, 2})
	assert.ErrorIs(t, err, core.ErrBadStep)
}

// TestSamplePoints_Step verifies uniform-spacing detection.
func TestSamplePoints_Step(t *testing.T) {
	pts, err := core.NewSamplePoints([]float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
	require.NoError(t, err)
	h, uniform := pts.Step(core.DefaultEpsilon)
	assert.True(t, uniform)
	assert.Equal(t, 1.0, h)

	pts, err = core.NewSamplePoints([]float64{0, 1, 3}, []float64{1, 2, 0})
	require.NoError(t, err)
	_, uniform = pts.Step(core.DefaultEpsilon)
	assert.False(t, uniform)
}

// TestSamplePoints_NearestIndex verifies nearest-node selection and the
// lower-index tie-break.
func TestSamplePoints_NearestIndex(t *testing.T) {
	pts, err := core.NewSamplePoints([]float64{0, 1, 2, 3}, []float64{1, 2, 0, 5})
	require.NoError(t, err)

	assert.Equal(t, 1, pts.NearestIndex(1.2))
	assert.Equal(t, 3, pts.NearestIndex(7.0), "out-of-range queries clamp to the last node")
	assert.Equal(t, 1, pts.NearestIndex(1.5), "ties resolve to the lower index")
}
