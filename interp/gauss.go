package interp

import "github.com/katalvlaran/compmath/difftab"

// Gauss central-difference formulas, expanded from a base node p:
//
//	forward:  y_p + sΔy_p + s(s−1)/2!·Δ²y_{p−1} + (s+1)s(s−1)/3!·Δ³y_{p−1} + ...
//	backward: y_p + sΔy_{p−1} + (s+1)s/2!·Δ²y_{p−1} + (s+1)s(s−1)/3!·Δ³y_{p−2} + ...
//
// Both zig-zag through the central triangle: order k reads position
// p − k/2 (forward) or p − (k+1)/2 (backward), alternating the new linear
// factor between the (s − d) and (s + d) side.

// gaussForwardTerms builds the Gauss forward series in s at base p.
func gaussForwardTerms(tbl *difftab.Table, p, order int) []term {
	terms := make([]term, 0, order+1)
	terms = append(terms, term{coeff: tbl.Row(0)[p]})
	roots := make([]float64, 0, order)
	fact := 1.0
	for k := 1; k <= order; k++ {
		fact *= float64(k)
		d := float64(k / 2)
		if k%2 == 0 {
			roots = append(roots, d)
		} else {
			roots = append(roots, -d) // factor (s + d); k = 1 contributes s
		}
		terms = append(terms, term{
			coeff: tbl.Row(k)[p-k/2] / fact,
			roots: cloneRoots(roots),
		})
	}

	return terms
}

// gaussBackwardTerms builds the Gauss backward series in s at base p.
func gaussBackwardTerms(tbl *difftab.Table, p, order int) []term {
	terms := make([]term, 0, order+1)
	terms = append(terms, term{coeff: tbl.Row(0)[p]})
	roots := make([]float64, 0, order)
	fact := 1.0
	for k := 1; k <= order; k++ {
		fact *= float64(k)
		d := float64(k / 2)
		if k%2 == 0 {
			roots = append(roots, -d) // factor (s + d)
		} else {
			roots = append(roots, d) // k = 1 contributes s
		}
		terms = append(terms, term{
			coeff: tbl.Row(k)[p-(k+1)/2] / fact,
			roots: cloneRoots(roots),
		})
	}

	return terms
}
