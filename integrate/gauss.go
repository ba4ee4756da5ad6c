package integrate

import (
	"gonum.org/v1/gonum/integrate/quad"
)

// GaussLegendre integrates f over [a, b] with n-point Gauss-Legendre
// quadrature. Unlike the tabulated rules it chooses its own evaluation
// points (the Legendre roots mapped onto [a, b]) and is exact for
// polynomials of degree ≤ 2n−1.
func GaussLegendre(f func(float64) float64, a, b float64, n int) (float64, error) {
	if f == nil {
		return 0, ErrNilFunc
	}
	if n < 1 {
		return 0, ErrBadNodeCount
	}

	return quad.Fixed(f, a, b, n, quad.Legendre{}, 0), nil
}
