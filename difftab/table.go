package difftab

// Kind identifies the difference family a Table carries.
//
//   - KindDivided  — span-divided coefficients over arbitrary spacing
//     (Newton's general interpolation formula).
//   - KindForward  — raw forward differences Δ over a uniform grid.
//   - KindBackward — the same triangle read along the trailing diagonal ∇.
//   - KindCentral  — the same triangle with diagonals interleaved around a
//     base node (Gauss, Stirling, Bessel).
type Kind int

const (
	// KindDivided marks a divided-difference table (unequal spacing allowed).
	KindDivided Kind = iota

	// KindForward marks a forward-difference table on a uniform grid.
	KindForward

	// KindBackward marks a backward-difference view of the uniform triangle.
	KindBackward

	// KindCentral marks a central-difference view of the uniform triangle.
	KindCentral
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindDivided:
		return "divided"
	case KindForward:
		return "forward"
	case KindBackward:
		return "backward"
	case KindCentral:
		return "central"
	default:
		return "unknown"
	}
}

// Table is a triangular difference table. rows[0] holds the raw y-values
// and rows[k] the k-th differences; rows[k] has N−k entries. Tables are
// immutable after construction, so concurrent reads need no locking.
type Table struct {
	kind Kind
	xs   []float64
	h    float64 // common step; 0 for divided tables
	rows [][]float64
}

// Kind reports the difference family of the table.
func (t *Table) Kind() Kind { return t.kind }

// Size reports N, the number of sample points the table was built from.
func (t *Table) Size() int { return len(t.rows[0]) }

// Order reports the highest difference order the table holds (N−1).
func (t *Table) Order() int { return len(t.rows) - 1 }

// Len reports the number of entries in row k (N−k), or 0 if k is invalid.
func (t *Table) Len(k int) int {
	if k < 0 || k >= len(t.rows) {
		return 0
	}

	return len(t.rows[k])
}

// At returns the k-th difference rooted at position i.
// Public indexers return ErrOutOfRange rather than panic.
func (t *Table) At(k, i int) (float64, error) {
	if k < 0 || k >= len(t.rows) || i < 0 || i >= len(t.rows[k]) {
		return 0, ErrOutOfRange
	}

	return t.rows[k][i], nil
}

// Row returns a copy of row k, or nil if k is invalid.
func (t *Table) Row(k int) []float64 {
	if k < 0 || k >= len(t.rows) {
		return nil
	}
	out := make([]float64, len(t.rows[k]))
	copy(out, t.rows[k])

	return out
}

// X returns the i-th abscissa the table was built from.
func (t *Table) X(i int) float64 { return t.xs[i] }

// Step reports the uniform grid step h, or 0 for divided tables.
func (t *Table) Step() float64 { return t.h }

// ForwardEdge returns the leading diagonal [Δ⁰y₀, Δ¹y₀, ..., Δᴺ⁻¹y₀] —
// the coefficients of the Newton forward formula (and, for divided tables,
// of Newton's general formula).
func (t *Table) ForwardEdge() []float64 {
	out := make([]float64, len(t.rows))
	for k, row := range t.rows {
		out[k] = row[0]
	}

	return out
}

// BackwardEdge returns the trailing diagonal [∇⁰yₙ, ∇¹yₙ, ..., ∇ᴺ⁻¹yₙ] —
// the coefficients of the Newton backward formula.
func (t *Table) BackwardEdge() []float64 {
	out := make([]float64, len(t.rows))
	for k, row := range t.rows {
		out[k] = row[len(row)-1]
	}

	return out
}
