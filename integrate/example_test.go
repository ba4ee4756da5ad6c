package integrate_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/compmath/core"
	"github.com/katalvlaran/compmath/integrate"
)

// Simpson's rule is exact for cubics, so the tabulated f(x) = x³
// integrates to x⁴/4 without error.
func ExampleSimpson() {
	pts, _ := core.UniformPoints(0, 1, []float64{0, 1, 8, 27, 64})

	v, _ := integrate.Simpson(pts)
	fmt.Printf("∫x³ over [0,4] = %.4f\n", v)
	// Output:
	// ∫x³ over [0,4] = 64.0000
}

// Gauss-Legendre quadrature takes the integrand itself instead of a
// table and places the nodes optimally.
func ExampleGaussLegendre() {
	v, _ := integrate.GaussLegendre(math.Sin, 0, 1, 8)
	fmt.Printf("∫sin over [0,1] = %.4f\n", v)
	// Output:
	// ∫sin over [0,1] = 0.4597
}
