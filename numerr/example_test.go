package numerr_test

import (
	"fmt"

	"github.com/katalvlaran/compmath/numerr"
)

// ExampleCondNums measures the sensitivity of x² at x = 3.
func ExampleCondNums() {
	square := func(x float64) float64 { return x * x }

	c, _ := numerr.CondNums(square, 3, numerr.WithDerivative(func(x float64) float64 { return 2 * x }))
	fmt.Printf("abs = %.0f, rel = %.0f\n", c.Abs, c.Rel)

	// Output:
	// abs = 18, rel = 2
}

// ExampleApproxNum propagates measurement error through a product.
func ExampleApproxNum() {
	length := numerr.NewApproxAbs(10, 0.5)
	width := numerr.NewApproxAbs(4, 0.25)

	area := length.Mul(width)
	fmt.Println(area)

	// Output:
	// 40 ± 4.5 (δ = 0.1125)
}

// ExampleRoundTo keeps three significant digits of π.
func ExampleRoundTo() {
	rounded, _ := numerr.RoundTo(3.14159, numerr.Significant, 3, 0)
	fmt.Println(rounded)

	// Output:
	// 3.14
}
