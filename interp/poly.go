package interp

import "gonum.org/v1/gonum/stat/combin"

// poly is a polynomial in one variable, coefficients in ascending powers.
// It is the workhorse behind the coefficient-based derivative evaluators:
// each scheme's series is expanded into a poly and differentiated
// term-by-term.
type poly []float64

// mulLinear returns p·(t − root).
func (p poly) mulLinear(root float64) poly {
	out := make(poly, len(p)+1)
	for i, c := range p {
		out[i+1] += c
		out[i] -= c * root
	}

	return out
}

// addScaled returns p + c·q, extending the degree as needed.
func (p poly) addScaled(q poly, c float64) poly {
	out := p
	if len(q) > len(out) {
		grown := make(poly, len(q))
		copy(grown, out)
		out = grown
	}
	for i, v := range q {
		out[i] += c * v
	}

	return out
}

// deriv returns the k-th derivative of p. The power rule contributes the
// falling factorial n·(n−1)···(n−k+1) = P(n, k) per monomial. A k beyond
// the degree yields the zero polynomial.
func (p poly) deriv(k int) poly {
	if k == 0 {
		return p
	}
	if k >= len(p) {
		return poly{0}
	}
	out := make(poly, len(p)-k)
	for n := k; n < len(p); n++ {
		out[n-k] = p[n] * float64(combin.NumPermutations(n, k))
	}

	return out
}

// eval evaluates p at t by Horner's rule.
func (p poly) eval(t float64) float64 {
	v := 0.0
	for i := len(p) - 1; i >= 0; i-- {
		v = v*t + p[i]
	}

	return v
}

// term is one summand of an interpolation series: coeff·Π(t − root).
// The coefficient already folds in the difference entry and 1/k!.
type term struct {
	coeff float64
	roots []float64
}

// value evaluates the term at t via the running product, exactly as the
// textbook formulas accumulate it.
func (tm term) value(t float64) float64 {
	v := tm.coeff
	for _, r := range tm.roots {
		v *= t - r
	}

	return v
}

// seriesValue sums a term sequence at t.
func seriesValue(terms []term, t float64) float64 {
	v := 0.0
	for _, tm := range terms {
		v += tm.value(t)
	}

	return v
}

// seriesPoly expands a term sequence into a single power-basis polynomial.
func seriesPoly(terms []term) poly {
	out := poly{0}
	for _, tm := range terms {
		p := poly{1}
		for _, r := range tm.roots {
			p = p.mulLinear(r)
		}
		out = out.addScaled(p, tm.coeff)
	}

	return out
}
