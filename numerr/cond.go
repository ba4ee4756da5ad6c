package numerr

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"github.com/katalvlaran/compmath/core"
)

// Conditioning holds the two condition numbers of a function at a point.
type Conditioning struct {
	// Abs is |x·f'(x)|, the absolute sensitivity of f to perturbations of x.
	Abs float64

	// Rel is |x·f'(x)/f(x)|, the amplification of relative input error.
	Rel float64
}

// Option tweaks one conditioning computation.
type Option func(*options)

type options struct {
	step float64
	df   func(float64) float64
}

// WithStep sets the finite-difference step used when no analytic
// derivative is supplied. The default is core.DefaultDerivativeStep.
func WithStep(h float64) Option {
	return func(o *options) { o.step = h }
}

// WithDerivative supplies f' analytically, bypassing the numerical
// estimate entirely.
func WithDerivative(df func(float64) float64) Option {
	return func(o *options) { o.df = df }
}

// CondNums computes the absolute and relative condition numbers of f at x.
//
// The derivative is estimated with a forward finite difference unless
// WithDerivative provides it. Rel requires f(x) ≠ 0 and fails with
// ErrZeroValue otherwise; a zero or non-finite step fails with ErrZeroStep.
func CondNums(f func(float64) float64, x float64, opts ...Option) (Conditioning, error) {
	if f == nil {
		return Conditioning{}, ErrNilFunc
	}
	o := options{step: core.DefaultDerivativeStep}
	for _, opt := range opts {
		opt(&o)
	}
	if o.step == 0 || math.IsNaN(o.step) || math.IsInf(o.step, 0) {
		return Conditioning{}, ErrZeroStep
	}

	fx := f(x)
	if fx == 0 {
		return Conditioning{}, ErrZeroValue
	}

	var dfx float64
	if o.df != nil {
		dfx = o.df(x)
	} else {
		dfx = fd.Derivative(f, x, &fd.Settings{Formula: fd.Forward, Step: o.step})
	}

	return Conditioning{
		Abs: math.Abs(x * dfx),
		Rel: math.Abs(x * dfx / fx),
	}, nil
}
