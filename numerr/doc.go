// Package numerr quantifies the accuracy of approximate values: condition
// numbers, absolute/relative error conversions, digit classification and
// error-aware arithmetic.
//
// 🚀 What lives here?
//
//	• CondNums — |x·f'(x)| and |x·f'(x)/f(x)|, the standard measures of how
//	  strongly a function amplifies input perturbations. The derivative is
//	  a forward finite difference unless supplied analytically.
//	• AbsError*/RelError* — the classical conversions between the four ways
//	  an error bound is stated: against an exact value, by a count of valid
//	  significant digits, from the counterpart bound, or by the half-unit
//	  convention of a written number.
//	• SignificantDigits/ValidDigits/DoubtfulDigits and RoundTo — place-value
//	  digit classification against an absolute error, computed on the
//	  fixed-point decimal rendering (robaho/fixed) rather than the binary
//	  float, so "the last written place" means what it says.
//	• ApproxNum — a value ± error pair with first-order propagation through
//	  +, −, ×, ÷, powers and the elementary functions.
//
// ⚙️ Usage:
//
//	c, err := numerr.CondNums(func(x float64) float64 { return x * x }, 3)
//	// c.Abs ≈ 18, c.Rel ≈ 2
//
//	a := numerr.NewApproxAbs(2.53, 0.005)
//	b := numerr.NewApproxAbs(1.17, 0.005)
//	fmt.Println(a.Mul(b)) // value ± propagated bound (δ = relative)
//
// Every function is pure; the package holds no state and performs no
// logging.
package numerr
