package integrate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/compmath/core"
	"github.com/katalvlaran/compmath/integrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// sample tabulates f on the uniform grid x = 0, 1, ..., n.
func sample(t *testing.T, f func(float64) float64, n int) *core.SamplePoints {
	t.Helper()
	xs := make([]float64, n+1)
	ys := make([]float64, n+1)
	for i := range xs {
		xs[i] = float64(i)
		ys[i] = f(xs[i])
	}
	pts, err := core.NewSamplePoints(xs, ys)
	require.NoError(t, err)

	return pts
}

// TestRectangle brackets a linear integrand between the left and right
// endpoint rules; their mean is the trapezoidal value.
func TestRectangle(t *testing.T) {
	pts := sample(t, func(x float64) float64 { return 2*x + 1 }, 4)

	left, err := integrate.Rectangle(pts, integrate.Left)
	require.NoError(t, err)
	assert.InDelta(t, 16.0, left, 1e-12)

	right, err := integrate.Rectangle(pts, integrate.Right)
	require.NoError(t, err)
	assert.InDelta(t, 24.0, right, 1e-12)
}

// TestTrapezoidAndMidpoint verifies exactness on linear data and the
// coincidence of the two rules on tabulated values.
func TestTrapezoidAndMidpoint(t *testing.T) {
	pts := sample(t, func(x float64) float64 { return 2*x + 1 }, 4)

	trap, err := integrate.Trapezoid(pts)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, trap, 1e-12) // ∫₀⁴ (2x+1) dx

	mid, err := integrate.Midpoint(pts)
	require.NoError(t, err)
	assert.InDelta(t, trap, mid, 1e-12)
}

// TestSimpson verifies the 1/3 rule is exact for a cubic and rejects odd
// interval counts.
func TestSimpson(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }

	got, err := integrate.Simpson(sample(t, cube, 4))
	require.NoError(t, err)
	assert.InDelta(t, 64.0, got, 1e-12) // ∫₀⁴ x³ dx

	_, err = integrate.Simpson(sample(t, cube, 3))
	assert.ErrorIs(t, err, integrate.ErrEvenIntervals)
}

// TestSimpson38 verifies the 3/8 rule on three intervals.
func TestSimpson38(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }

	got, err := integrate.Simpson38(sample(t, cube, 3))
	require.NoError(t, err)
	assert.InDelta(t, 20.25, got, 1e-12) // ∫₀³ x³ dx

	_, err = integrate.Simpson38(sample(t, cube, 4))
	assert.ErrorIs(t, err, integrate.ErrTripleIntervals)
}

// TestWeddle verifies exactness up to degree 5 over one sextuple.
func TestWeddle(t *testing.T) {
	quintic := func(x float64) float64 { return math.Pow(x, 5) }

	got, err := integrate.Weddle(sample(t, quintic, 6))
	require.NoError(t, err)
	assert.InDelta(t, 7776.0, got, 1e-9) // ∫₀⁶ x⁵ dx = 6⁶/6

	_, err = integrate.Weddle(sample(t, quintic, 4))
	assert.ErrorIs(t, err, integrate.ErrSextupleIntervals)
}

// TestNewtonCotes verifies the solved weights against the closed-form
// rules on small uniform grids and exactness on uneven nodes.
func TestNewtonCotes(t *testing.T) {
	cube := func(x float64) float64 { return x * x * x }

	// two nodes: the moment system reproduces the trapezoidal rule
	two := sample(t, cube, 1)
	nc, err := integrate.NewtonCotes(two)
	require.NoError(t, err)
	trap, err := integrate.Trapezoid(two)
	require.NoError(t, err)
	assert.InDelta(t, trap, nc, 1e-12)

	w, err := integrate.NewtonCotesWeights(two)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{0.5, 0.5}, w, 1e-12))

	// three nodes: Simpson weights, cubic integrated exactly
	three := sample(t, cube, 2)
	w, err = integrate.NewtonCotesWeights(three)
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox([]float64{1.0 / 3, 4.0 / 3, 1.0 / 3}, w, 1e-10))

	nc, err = integrate.NewtonCotes(three)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, nc, 1e-10) // ∫₀² x³ dx

	// unequal spacing: still exact for degree ≤ N−1
	pts, err := core.NewSamplePoints([]float64{0, 0.5, 2}, []float64{0, 0.25, 4})
	require.NoError(t, err)
	nc, err = integrate.NewtonCotes(pts)
	require.NoError(t, err)
	assert.InDelta(t, 8.0/3, nc, 1e-10) // ∫₀² x² dx
}

// TestGaussLegendre verifies degree-(2n−1) exactness and a transcendental
// reference value.
func TestGaussLegendre(t *testing.T) {
	quintic := func(x float64) float64 { return math.Pow(x, 5) }

	got, err := integrate.GaussLegendre(quintic, 0, 1, 3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6, got, 1e-12) // 3 nodes, exact through degree 5

	got, err = integrate.GaussLegendre(math.Cos, 0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(1), got, 1e-10)

	_, err = integrate.GaussLegendre(nil, 0, 1, 3)
	assert.ErrorIs(t, err, integrate.ErrNilFunc)

	_, err = integrate.GaussLegendre(math.Cos, 0, 1, 0)
	assert.ErrorIs(t, err, integrate.ErrBadNodeCount)
}

// TestNilPoints covers the shared nil guard.
func TestNilPoints(t *testing.T) {
	_, err := integrate.Trapezoid(nil)
	assert.ErrorIs(t, err, integrate.ErrNilPoints)

	_, err = integrate.Simpson(nil)
	assert.ErrorIs(t, err, integrate.ErrNilPoints)

	_, err = integrate.NewtonCotes(nil)
	assert.ErrorIs(t, err, integrate.ErrNilPoints)
}
