package interp

import "github.com/katalvlaran/compmath/difftab"

// Newton's interpolation formulas as term sequences.
//
//	divided:  y₀ + Σ f[x₀..x_k] · Π_{j<k} (x − x_j)
//	forward:  y₀ + Σ Δᵏy₀/k!  · s(s−1)···(s−k+1),    s = (x − x₀)/h
//	backward: yₙ + Σ ∇ᵏyₙ/k!  · s(s+1)···(s+k−1),    s = (x − xₙ)/h

// dividedTerms builds Newton's general formula up to the given order.
// The series variable is x itself.
func dividedTerms(tbl *difftab.Table, order int) []term {
	edge := tbl.ForwardEdge()
	terms := make([]term, 0, order+1)
	roots := make([]float64, 0, order)
	for k := 0; k <= order; k++ {
		if k > 0 {
			roots = append(roots, tbl.X(k-1))
		}
		terms = append(terms, term{coeff: edge[k], roots: cloneRoots(roots)})
	}

	return terms
}

// forwardTerms builds the Newton-Gregory forward series in s.
func forwardTerms(tbl *difftab.Table, order int) []term {
	edge := tbl.ForwardEdge()
	terms := make([]term, 0, order+1)
	roots := make([]float64, 0, order)
	fact := 1.0
	for k := 0; k <= order; k++ {
		if k > 0 {
			fact *= float64(k)
			roots = append(roots, float64(k-1))
		}
		terms = append(terms, term{coeff: edge[k] / fact, roots: cloneRoots(roots)})
	}

	return terms
}

// backwardTerms builds the Newton-Gregory backward series in s.
func backwardTerms(tbl *difftab.Table, order int) []term {
	edge := tbl.BackwardEdge()
	terms := make([]term, 0, order+1)
	roots := make([]float64, 0, order)
	fact := 1.0
	for k := 0; k <= order; k++ {
		if k > 0 {
			fact *= float64(k)
			roots = append(roots, -float64(k-1))
		}
		terms = append(terms, term{coeff: edge[k] / fact, roots: cloneRoots(roots)})
	}

	return terms
}

// cloneRoots snapshots the running factor list for one term.
func cloneRoots(roots []float64) []float64 {
	out := make([]float64, len(roots))
	copy(out, roots)

	return out
}
