package integrate

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/compmath/core"
)

// NewtonCotes integrates tabulated data with the generalized Newton-Cotes
// rule: the node weights are solved from the Vandermonde moment system
// that makes the rule exact for every monomial up to degree N−1 over
// [x₀, x_{N−1}]. Works on unequally spaced nodes; for 2 and 3 equally
// spaced nodes the weights reduce to the trapezoidal and Simpson rules.
func NewtonCotes(pts *core.SamplePoints) (float64, error) {
	w, err := NewtonCotesWeights(pts)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	for i, wi := range w {
		sum += wi * pts.Y(i)
	}

	return sum, nil
}

// NewtonCotesWeights solves the moment system for the rule's node weights:
// Σ w_j·x_jᵐ = (bᵐ⁺¹ − aᵐ⁺¹)/(m+1) for m = 0..N−1.
func NewtonCotesWeights(pts *core.SamplePoints) ([]float64, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}
	n := pts.Len()
	a, b := pts.X(0), pts.X(n-1)

	vander := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for m := 0; m < n; m++ {
		for j := 0; j < n; j++ {
			vander.Set(m, j, math.Pow(pts.X(j), float64(m)))
		}
		p := float64(m + 1)
		rhs.SetVec(m, (math.Pow(b, p)-math.Pow(a, p))/p)
	}

	var w mat.VecDense
	if err := w.SolveVec(vander, rhs); err != nil {
		return nil, ErrSingular
	}

	out := make([]float64, n)
	copy(out, w.RawVector().Data)

	return out, nil
}
