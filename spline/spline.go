package spline

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/compmath/core"
)

// Spline is a C² piecewise cubic through the sample nodes, stored in
// Hermite form per segment:
//
//	S_i(x) = a_i + b_i·dx + c_i·dx² + d_i·dx³,  dx = x − x_i
//
// Immutable once built; safe for concurrent queries.
type Spline struct {
	xs   []float64
	segs []segment
}

type segment struct {
	a, b, c, d float64
	x0         float64
}

// New builds a cubic spline through the points. The x-values must be
// strictly increasing and at least three nodes are required. Options
// choose the boundary condition; the default is NotAKnot.
func New(pts *core.SamplePoints, opts ...Option) (*Spline, error) {
	if pts == nil {
		return nil, ErrNilPoints
	}
	n := pts.Len()
	if n < 3 {
		return nil, ErrTooFewPoints
	}
	xs, ys := pts.Xs(), pts.Ys()
	for i := 1; i < n; i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrNotIncreasing
		}
	}

	cfg := config{boundary: NotAKnot}
	for _, opt := range opts {
		opt(&cfg)
	}

	m, err := solveSlopes(xs, ys, cfg)
	if err != nil {
		return nil, err
	}

	segs := make([]segment, n-1)
	for i := 0; i < n-1; i++ {
		h := xs[i+1] - xs[i]
		dy := ys[i+1] - ys[i]
		segs[i] = segment{
			a:  ys[i],
			b:  m[i],
			c:  3*dy/(h*h) - (2*m[i]+m[i+1])/h,
			d:  -2*dy/(h*h*h) + (m[i]+m[i+1])/(h*h),
			x0: xs[i],
		}
	}

	return &Spline{xs: xs, segs: segs}, nil
}

// solveSlopes assembles and solves the dense system for the node slopes
// m_i = S'(x_i). Interior rows impose curvature continuity; the first and
// last rows carry the boundary condition.
func solveSlopes(xs, ys []float64, cfg config) ([]float64, error) {
	n := len(xs)
	h := make([]float64, n-1)
	for i := range h {
		h[i] = xs[i+1] - xs[i]
	}

	a := mat.NewDense(n, n, nil)
	rhs := mat.NewVecDense(n, nil)
	for i := 1; i < n-1; i++ {
		sum := h[i-1] + h[i]
		a.Set(i, i-1, h[i]/sum)
		a.Set(i, i, 2)
		a.Set(i, i+1, h[i-1]/sum)
		rhs.SetVec(i, 3*((ys[i+1]-ys[i])/h[i]*h[i-1]+(ys[i]-ys[i-1])/h[i-1]*h[i])/sum)
	}

	switch cfg.boundary {
	case Clamped:
		if !cfg.hasD {
			return nil, ErrMissingDerivatives
		}
		a.Set(0, 0, 1)
		rhs.SetVec(0, cfg.d0)
		a.Set(n-1, n-1, 1)
		rhs.SetVec(n-1, cfg.dn)

	case SecondDeriv:
		if !cfg.hasS {
			return nil, ErrMissingSecondDerivs
		}
		// S''(x₀) = s₀ in slope form: 2m₀ + m₁ = 3Δ₀/h₀ − h₀·s₀/2
		a.Set(0, 0, 2)
		a.Set(0, 1, 1)
		rhs.SetVec(0, 3*(ys[1]-ys[0])/h[0]-h[0]*cfg.s0/2)
		// S''(x_{n−1}) = sₙ: m_{n−2} + 2m_{n−1} = 3Δ_{n−2}/h_{n−2} + h_{n−2}·sₙ/2
		a.Set(n-1, n-2, 1)
		a.Set(n-1, n-1, 2)
		rhs.SetVec(n-1, 3*(ys[n-1]-ys[n-2])/h[n-2]+h[n-2]*cfg.sn/2)

	case Periodic:
		if math.Abs(ys[0]-ys[n-1]) > core.DefaultEpsilon {
			return nil, ErrNotPeriodic
		}
		// equal end slopes, and curvature continuity across the joined node
		a.Set(0, 0, 1)
		a.Set(0, n-1, -1)
		sum := h[n-2] + h[0]
		a.Set(n-1, n-2, h[0]/sum)
		a.Set(n-1, n-1, 2)
		a.Set(n-1, 1, h[n-2]/sum)
		rhs.SetVec(n-1, 3*((ys[1]-ys[0])/h[0]*h[n-2]+(ys[n-1]-ys[n-2])/h[n-2]*h[0])/sum)

	default: // NotAKnot
		// d₀ = d₁ (third-derivative continuity at x₁), and the mirrored
		// condition at x_{n−2}, both expressed in the slopes
		notAKnotRow(a, rhs, 0, xs, ys, h, 0)
		notAKnotRow(a, rhs, n-1, xs, ys, h, len(h)-2)
	}

	var m mat.VecDense
	if err := m.SolveVec(a, rhs); err != nil {
		return nil, ErrSingular
	}

	out := make([]float64, n)
	copy(out, m.RawVector().Data)

	return out, nil
}

// notAKnotRow writes d_i = d_{i+1} into system row r:
//
//	(m_i+m_{i+1})/h_i² − (m_{i+1}+m_{i+2})/h_{i+1}² =
//	    2(y_{i+1}−y_{i+2})/h_{i+1}³ + 2(y_{i+1}−y_i)/h_i³
func notAKnotRow(a *mat.Dense, rhs *mat.VecDense, r int, xs, ys, h []float64, i int) {
	hi2 := h[i] * h[i]
	hj2 := h[i+1] * h[i+1]
	a.Set(r, i, 1/hi2)
	a.Set(r, i+1, 1/hi2-1/hj2)
	a.Set(r, i+2, -1/hj2)
	rhs.SetVec(r, 2*(ys[i+1]-ys[i+2])/(hj2*h[i+1])+2*(ys[i+1]-ys[i])/(hi2*h[i]))
}

// segIndex returns the segment covering x, clamping out-of-range queries
// to the end segments.
func (s *Spline) segIndex(x float64) int {
	i := sort.SearchFloat64s(s.xs, x) - 1
	if i < 0 {
		i = 0
	}
	if i > len(s.segs)-1 {
		i = len(s.segs) - 1
	}

	return i
}

// Interpolate evaluates the spline at x. Queries outside the node range
// extend the end segments (cubic extrapolation).
func (s *Spline) Interpolate(x float64) float64 {
	sg := s.segs[s.segIndex(x)]
	dx := x - sg.x0

	return sg.a + dx*(sg.b+dx*(sg.c+dx*sg.d))
}

// Derivative evaluates the order-th derivative of the spline at x for
// order 1, 2 or 3.
func (s *Spline) Derivative(x float64, order int) (float64, error) {
	sg := s.segs[s.segIndex(x)]
	dx := x - sg.x0
	switch order {
	case 1:
		return sg.b + dx*(2*sg.c+3*dx*sg.d), nil
	case 2:
		return 2*sg.c + 6*sg.d*dx, nil
	case 3:
		return 6 * sg.d, nil
	default:
		return 0, ErrBadOrder
	}
}

// Integrate computes the definite integral of the spline over [a, b]
// analytically, segment by segment. Bounds given in reverse order are
// swapped first. Unlike Interpolate and Derivative, bounds outside the
// node range are clamped to it: the integral covers only where the
// spline is defined and never accumulates extrapolated segments.
func (s *Spline) Integrate(a, b float64) float64 {
	if a > b {
		a, b = b, a
	}

	total := 0.0
	left := s.segIndex(a)
	right := s.segIndex(b)
	xLeft := a
	for i := left; i <= right; i++ {
		sg := s.segs[i]
		x0 := math.Max(sg.x0, xLeft)
		x1 := math.Min(s.xs[i+1], b)
		total += sg.primitive(x1-sg.x0) - sg.primitive(x0-sg.x0)
		xLeft = x1
	}

	return total
}

// primitive is the segment antiderivative at local offset dx.
func (sg segment) primitive(dx float64) float64 {
	return dx * (sg.a + dx*(sg.b/2+dx*(sg.c/3+dx*sg.d/4)))
}
