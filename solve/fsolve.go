package solve

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// Default iteration controls for the root finders.
const (
	DefaultEps     = 1e-8
	DefaultMaxIter = 100
)

// Options bounds a root-finding iteration.
//
// Eps — stop once two successive iterates differ by less than Eps.
// MaxIter — iteration limit; exceeding it fails with ErrMaxIterations.
type Options struct {
	Eps     float64
	MaxIter int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Eps: DefaultEps, MaxIter: DefaultMaxIter}
}

func (o *Options) normalize() Options {
	out := DefaultOptions()
	if o != nil {
		out = *o
	}
	if out.Eps <= 0 {
		out.Eps = DefaultEps
	}
	if out.MaxIter <= 0 {
		out.MaxIter = DefaultMaxIter
	}

	return out
}

// Tangent solves f(x) = 0 by Newton's method from the initial guess x0,
// returning the root and the number of iterations spent.
//
// df supplies the derivative; a nil df falls back to a central finite
// difference. A vanishing derivative at an iterate fails with
// ErrZeroDerivative; exceeding the iteration limit with ErrMaxIterations.
func Tangent(f, df func(float64) float64, x0 float64, opts *Options) (float64, int, error) {
	if f == nil {
		return 0, 0, ErrNilFunc
	}
	o := opts.normalize()
	if df == nil {
		df = func(x float64) float64 {
			return fd.Derivative(f, x, &fd.Settings{Formula: fd.Central})
		}
	}

	x := x0
	for i := 1; i <= o.MaxIter; i++ {
		d := df(x)
		if d == 0 {
			return 0, i, ErrZeroDerivative
		}
		next := x - f(x)/d
		if math.Abs(next-x) < o.Eps {
			return next, i, nil
		}
		x = next
	}

	return 0, o.MaxIter, ErrMaxIterations
}

// Secant solves f(x) = 0 by the chord method from the two initial guesses
// x0 and x1, returning the root and the number of iterations spent.
func Secant(f func(float64) float64, x0, x1 float64, opts *Options) (float64, int, error) {
	if f == nil {
		return 0, 0, ErrNilFunc
	}
	o := opts.normalize()

	prev, curr := x0, x1
	for i := 1; i <= o.MaxIter; i++ {
		fPrev, fCurr := f(prev), f(curr)
		denom := fCurr - fPrev
		if denom == 0 {
			return 0, i, ErrFlatSecant
		}
		next := curr - fCurr*(curr-prev)/denom
		if math.Abs(next-curr) < o.Eps {
			return next, i, nil
		}
		prev, curr = curr, next
	}

	return 0, o.MaxIter, ErrMaxIterations
}

// SignChange scans [a, b] with the given step and returns the first
// subinterval [lo, hi] on which f changes sign, a bracketing interval for
// the root finders. A zero step means the documented default 0.01.
func SignChange(f func(float64) float64, a, b, step float64) (lo, hi float64, err error) {
	if f == nil {
		return 0, 0, ErrNilFunc
	}
	if step == 0 {
		step = 0.01
	}
	if step < 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return 0, 0, ErrBadStep
	}

	x0 := a
	for x0 < b {
		x1 := math.Min(x0+step, b)
		if f(x0)*f(x1) < 0 {
			return x0, x1, nil
		}
		x0 = x1
	}

	return 0, 0, ErrNoSignChange
}
