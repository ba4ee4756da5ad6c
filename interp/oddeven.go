package interp

import "github.com/katalvlaran/compmath/difftab"

// Stirling and Bessel central-difference formulas.
//
// Stirling averages the two Gauss zig-zags around a single base node:
//
//	y_p + s·μΔy_p + s²/2!·Δ²y_{p−1} + s(s²−1)/3!·μΔ³y_{p−1} + s²(s²−1)/4!·Δ⁴y_{p−2} + ...
//
// where μΔᵏ averages the two symmetric entries of row k. Bessel centers on
// the node pair (p, p+1):
//
//	μy + (s−½)Δy_p + s(s−1)/2!·μΔ² + s(s−1)(s−½)/3!·Δ³y_{p−1} + (s+1)s(s−1)(s−2)/4!·μΔ⁴ + ...

// stirlingTerms builds Stirling's series in s at base p.
//
// Factor sequence: P₁ = s, P₂ = s², P_{2j+1} = s·Π_{i≤j}(s²−i²),
// P_{2j} = s²·Π_{i<j}(s²−i²).
func stirlingTerms(tbl *difftab.Table, p, order int) []term {
	terms := make([]term, 0, order+1)
	terms = append(terms, term{coeff: tbl.Row(0)[p]})
	oddRoots := []float64{0}
	fact := 1.0
	for k := 1; k <= order; k++ {
		fact *= float64(k)
		if k%2 == 1 {
			if j := float64(k / 2); j > 0 {
				oddRoots = append(oddRoots, j, -j)
			}
			row := tbl.Row(k)
			mean := (row[p-(k+1)/2] + row[p-(k-1)/2]) / 2
			terms = append(terms, term{coeff: mean / fact, roots: cloneRoots(oddRoots)})
		} else {
			roots := append(cloneRoots(oddRoots), 0)
			terms = append(terms, term{coeff: tbl.Row(k)[p-k/2] / fact, roots: roots})
		}
	}

	return terms
}

// besselTerms builds Bessel's series in s at base p (the left node of the
// central pair; s is measured from x_p, so s = ½ is the pair midpoint).
//
// Factor sequence: P₁ = (s−½), P_{2j} = Π_{i<j}(s²−i²)·s·(s−j),
// P_{2j+1} = P_{2j}·(s−½).
func besselTerms(tbl *difftab.Table, p, order int) []term {
	terms := make([]term, 0, order+1)
	row0 := tbl.Row(0)
	terms = append(terms, term{coeff: (row0[p] + row0[p+1]) / 2})
	evenRoots := make([]float64, 0, order)
	fact := 1.0
	for k := 1; k <= order; k++ {
		fact *= float64(k)
		j := k / 2
		if k%2 == 1 {
			roots := append(cloneRoots(evenRoots), 0.5)
			terms = append(terms, term{coeff: tbl.Row(k)[p-j] / fact, roots: roots})
		} else {
			evenRoots = append(evenRoots, -float64(j-1), float64(j))
			row := tbl.Row(k)
			mean := (row[p-j] + row[p-j+1]) / 2
			terms = append(terms, term{coeff: mean / fact, roots: cloneRoots(evenRoots)})
		}
	}

	return terms
}
