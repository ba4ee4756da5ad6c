package solve

// Tridiagonal solves the system
//
//	lower[i-1]·x_{i-1} + main[i]·x_i + upper[i]·x_{i+1} = rhs[i]
//
// with the Thomas algorithm (single forward elimination sweep and back
// substitution, O(n)). lower and upper have length n−1, main and rhs
// length n. The coefficient matrix must be non-degenerate in the usual
// diagonally dominant sense; no pivoting is performed.
func Tridiagonal(lower, main, upper, rhs []float64) ([]float64, error) {
	n := len(main)
	if n == 0 || len(lower) != n-1 || len(upper) != n-1 || len(rhs) != n {
		return nil, ErrDimensionMismatch
	}

	// sweep coefficients: x_i = alpha[i+1]·x_{i+1} + beta[i+1]
	alpha := make([]float64, n)
	beta := make([]float64, n)
	for i := 0; i < n-1; i++ {
		lo := 0.0
		if i > 0 {
			lo = lower[i-1]
		}
		denom := main[i] + lo*alpha[i]
		alpha[i+1] = -upper[i] / denom
		beta[i+1] = (rhs[i] - lo*beta[i]) / denom
	}

	x := make([]float64, n)
	last := 0.0
	if n > 1 {
		last = lower[n-2]
	}
	x[n-1] = (rhs[n-1] - last*beta[n-1]) / (main[n-1] + last*alpha[n-1])
	for i := n - 2; i >= 0; i-- {
		x[i] = alpha[i+1]*x[i+1] + beta[i+1]
	}

	return x, nil
}
