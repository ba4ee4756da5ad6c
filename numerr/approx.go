package numerr

import (
	"fmt"
	"math"
)

// ApproxNum is a value carrying an absolute error bound, with first-order
// propagation through arithmetic and elementary functions. The relative
// error is kept consistent with the absolute one (+Inf when the value is
// exactly zero).
type ApproxNum struct {
	value  float64
	absErr float64
	relErr float64
}

// NewApprox builds an approximate number with the conventional error of
// its written form, half a unit of the last rendered decimal place.
func NewApprox(value float64) ApproxNum {
	return NewApproxAbs(value, DefaultAbsError(value))
}

// NewApproxAbs builds an approximate number from an absolute error bound.
func NewApproxAbs(value, absErr float64) ApproxNum {
	absErr = math.Abs(absErr)

	return ApproxNum{value: value, absErr: absErr, relErr: relOf(value, absErr)}
}

// NewApproxRel builds an approximate number from a relative error bound.
func NewApproxRel(value, relErr float64) ApproxNum {
	relErr = math.Abs(relErr)

	return ApproxNum{value: value, absErr: math.Abs(value) * relErr, relErr: relErr}
}

func relOf(value, absErr float64) float64 {
	if value == 0 {
		return math.Inf(1)
	}

	return absErr / math.Abs(value)
}

// Value returns the central value.
func (a ApproxNum) Value() float64 { return a.value }

// AbsErr returns the absolute error bound.
func (a ApproxNum) AbsErr() float64 { return a.absErr }

// RelErr returns the relative error bound.
func (a ApproxNum) RelErr() float64 { return a.relErr }

// String renders the number as "v ± a (δ = r)".
func (a ApproxNum) String() string {
	return fmt.Sprintf("%g ± %g (δ = %g)", a.value, a.absErr, a.relErr)
}

// Add returns a + b; absolute errors add.
func (a ApproxNum) Add(b ApproxNum) ApproxNum {
	return NewApproxAbs(a.value+b.value, a.absErr+b.absErr)
}

// Sub returns a − b; absolute errors add.
func (a ApproxNum) Sub(b ApproxNum) ApproxNum {
	return NewApproxAbs(a.value-b.value, a.absErr+b.absErr)
}

// AddConst shifts the value by an exact constant.
func (a ApproxNum) AddConst(c float64) ApproxNum {
	return NewApproxAbs(a.value+c, a.absErr)
}

// Mul returns a·b with |b|·Δa + |a|·Δb absolute error.
func (a ApproxNum) Mul(b ApproxNum) ApproxNum {
	return NewApproxAbs(a.value*b.value, math.Abs(b.value)*a.absErr+math.Abs(a.value)*b.absErr)
}

// MulConst scales the value and its error by an exact constant.
func (a ApproxNum) MulConst(c float64) ApproxNum {
	return NewApproxAbs(a.value*c, math.Abs(c)*a.absErr)
}

// Div returns a/b; a zero divisor value fails with ErrDivisionByZero.
func (a ApproxNum) Div(b ApproxNum) (ApproxNum, error) {
	if b.value == 0 {
		return ApproxNum{}, ErrDivisionByZero
	}
	abs := (math.Abs(b.value)*a.absErr + math.Abs(a.value)*b.absErr) / (b.value * b.value)

	return NewApproxAbs(a.value/b.value, abs), nil
}

// Pow returns a^p with |p·a^(p−1)|·Δa absolute error.
func (a ApproxNum) Pow(p float64) ApproxNum {
	v := math.Pow(a.value, p)

	return NewApproxAbs(v, math.Abs(p*math.Pow(a.value, p-1))*a.absErr)
}

// Sqrt returns √a; a negative value fails with ErrDomain.
func (a ApproxNum) Sqrt() (ApproxNum, error) {
	if a.value < 0 {
		return ApproxNum{}, ErrDomain
	}
	v := math.Sqrt(a.value)
	abs := math.Inf(1)
	if v != 0 {
		abs = a.absErr / (2 * v)
	}

	return NewApproxAbs(v, abs), nil
}

// Exp returns e^a with e^a·Δa absolute error.
func (a ApproxNum) Exp() ApproxNum {
	v := math.Exp(a.value)

	return NewApproxAbs(v, v*a.absErr)
}

// Log returns ln a; a non-positive value fails with ErrDomain.
func (a ApproxNum) Log() (ApproxNum, error) {
	if a.value <= 0 {
		return ApproxNum{}, ErrDomain
	}

	return NewApproxAbs(math.Log(a.value), a.absErr/a.value), nil
}

// Sin returns sin a with |cos a|·Δa absolute error.
func (a ApproxNum) Sin() ApproxNum {
	return NewApproxAbs(math.Sin(a.value), math.Abs(math.Cos(a.value))*a.absErr)
}

// Cos returns cos a with |sin a|·Δa absolute error.
func (a ApproxNum) Cos() ApproxNum {
	return NewApproxAbs(math.Cos(a.value), math.Abs(math.Sin(a.value))*a.absErr)
}
