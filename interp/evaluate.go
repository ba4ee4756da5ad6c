package interp

import (
	"math"

	"github.com/katalvlaran/compmath/core"
	"github.com/katalvlaran/compmath/difftab"
)

// Evaluate interpolates the sample points at x using the given scheme.
//
// A nil opts uses DefaultOptions(): maximum usable order at the selected
// base node. Fixed-step schemes return difftab.ErrInvalidSpacing on
// non-uniform grids; a requested order beyond the available differences
// returns ErrInsufficientPoints. Out-of-range x is permitted
// (extrapolation) — its accuracy is the caller's concern, see
// TruncationError.
//
// All schemes evaluate the same unique interpolating polynomial at full
// order, so Evaluate(pts, x, s) agrees with NewtonDivided within floating
// tolerance for every uniform-grid scheme s.
func Evaluate(pts *core.SamplePoints, x float64, scheme Scheme, opts *Options) (Result, error) {
	sel, tbl, order, err := prepare(pts, x, scheme, opts)
	if err != nil {
		return Result{}, err
	}

	if scheme == Lagrange {
		start := lagrangeWindow(pts, x, order)

		return Result{
			Value: lagrangeValue(pts, x, start, order+1),
			Order: order,
			Base:  sel.Base,
		}, nil
	}

	terms, err := termsFor(scheme, tbl, sel, order)
	if err != nil {
		return Result{}, err
	}

	return Result{Value: seriesValue(terms, seriesVar(scheme, sel, x)), Order: order, Base: sel.Base}, nil
}

// Derivative estimates the k-th derivative of the interpolated function at
// x. The scheme's series is expanded into a power-basis polynomial and
// differentiated term-by-term; fixed-step schemes pick up the chain-rule
// factor (1/h)ᵏ. The fit is a degree-order polynomial, so k equal to the
// order yields the constant k! times the leading coefficient, and any k
// beyond the order yields exactly 0, never an error.
func Derivative(pts *core.SamplePoints, x float64, k int, scheme Scheme, opts *Options) (float64, error) {
	if k < 0 {
		return 0, ErrBadDerivativeOrder
	}
	sel, tbl, order, err := prepare(pts, x, scheme, opts)
	if err != nil {
		return 0, err
	}

	var p poly
	if scheme == Lagrange {
		start := lagrangeWindow(pts, x, order)
		p = lagrangePoly(pts, start, order+1)
	} else {
		terms, tErr := termsFor(scheme, tbl, sel, order)
		if tErr != nil {
			return 0, tErr
		}
		p = seriesPoly(terms)
	}

	val := p.deriv(k).eval(seriesVar(scheme, sel, x))
	if scheme.fixedStep() {
		val *= math.Pow(1/sel.H, float64(k))
	}

	return val, nil
}

// TruncationError estimates the truncation error of an order-m fit at x as
// the magnitude of the first neglected series term — the standard
// next-order-term heuristic. At maximum order no next difference exists
// and the estimate is exactly 0 (an order-m polynomial through m+1 points
// is exact for degree-m data). Lagrange shares the Newton-divided estimate
// since both evaluate the same polynomial.
func TruncationError(pts *core.SamplePoints, x float64, scheme Scheme, opts *Options) (float64, error) {
	if scheme == Lagrange {
		scheme = NewtonDivided
	}
	sel, tbl, order, err := prepare(pts, x, scheme, opts)
	if err != nil {
		return 0, err
	}
	if order+1 > sel.MaxOrder {
		return 0, nil
	}

	terms, err := termsFor(scheme, tbl, sel, order+1)
	if err != nil {
		return 0, err
	}
	next := terms[len(terms)-1]

	return math.Abs(next.value(seriesVar(scheme, sel, x))), nil
}

// prepare validates inputs, selects the base node, builds the table the
// scheme consumes and resolves the effective order.
func prepare(pts *core.SamplePoints, x float64, scheme Scheme, opts *Options) (NodeSelection, *difftab.Table, int, error) {
	if pts == nil {
		return NodeSelection{}, nil, 0, ErrNilPoints
	}
	if scheme < Lagrange || scheme > Bessel {
		return NodeSelection{}, nil, 0, ErrUnknownScheme
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Order < 0 {
		return NodeSelection{}, nil, 0, ErrBadOrder
	}
	if o.Eps <= 0 {
		o.Eps = core.DefaultEpsilon
	}

	sel, err := SelectBase(pts, x, scheme, o.Eps)
	if err != nil {
		return NodeSelection{}, nil, 0, err
	}

	order := sel.MaxOrder
	if o.Order > 0 {
		if o.Order > sel.MaxOrder {
			return NodeSelection{}, nil, 0, ErrInsufficientPoints
		}
		order = o.Order
	}

	var tbl *difftab.Table
	switch scheme {
	case Lagrange:
		// direct weighted sum; no table
	case NewtonDivided:
		tbl, err = difftab.Divided(pts)
	case NewtonForward:
		tbl, err = difftab.Forward(pts, difftab.WithEpsilon(o.Eps))
	case NewtonBackward:
		tbl, err = difftab.Backward(pts, difftab.WithEpsilon(o.Eps))
	default:
		tbl, err = difftab.Central(pts, difftab.WithEpsilon(o.Eps))
	}
	if err != nil {
		return NodeSelection{}, nil, 0, err
	}

	return sel, tbl, order, nil
}

// termsFor builds the scheme's series up to the given order.
func termsFor(scheme Scheme, tbl *difftab.Table, sel NodeSelection, order int) ([]term, error) {
	switch scheme {
	case NewtonDivided:
		return dividedTerms(tbl, order), nil
	case NewtonForward:
		return forwardTerms(tbl, order), nil
	case NewtonBackward:
		return backwardTerms(tbl, order), nil
	case GaussForward:
		return gaussForwardTerms(tbl, sel.Base, order), nil
	case GaussBackward:
		return gaussBackwardTerms(tbl, sel.Base, order), nil
	case Stirling:
		return stirlingTerms(tbl, sel.Base, order), nil
	case Bessel:
		return besselTerms(tbl, sel.Base, order), nil
	default:
		return nil, ErrUnknownScheme
	}
}

// seriesVar returns the variable each scheme's series is expanded in:
// s for fixed-step schemes, x itself for divided differences.
func seriesVar(scheme Scheme, sel NodeSelection, x float64) float64 {
	if scheme.fixedStep() {
		return sel.S
	}

	return x
}
