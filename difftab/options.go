package difftab

import (
	"math"

	"github.com/katalvlaran/compmath/core"
)

// panic message for the option constructor (programmer error, not user input).
const panicEpsilonInvalid = "difftab: WithEpsilon: eps must be finite, non-negative"

// Option mutates builder options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error); all
// user-input failures surface as sentinel errors from the builders.
type Option func(*options)

type options struct {
	eps float64
}

func defaultOptions() options {
	return options{eps: core.DefaultEpsilon}
}

// WithEpsilon overrides the tolerance used by the uniform-spacing check in
// the fixed-step builders. Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
