package integrate

import "github.com/katalvlaran/compmath/core"

// RectMode selects which endpoint the rectangle rule samples.
type RectMode int

const (
	// Left uses the left endpoint of each subinterval.
	Left RectMode = iota

	// Right uses the right endpoint of each subinterval.
	Right
)

// Rectangle integrates tabulated data with the rectangle rule: each
// subinterval contributes width times the chosen endpoint value. First
// order accurate; mostly useful as a baseline for the sharper rules.
func Rectangle(pts *core.SamplePoints, mode RectMode) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}

	sum := 0.0
	for i := 0; i < pts.Len()-1; i++ {
		y := pts.Y(i)
		if mode == Right {
			y = pts.Y(i + 1)
		}
		sum += y * (pts.X(i+1) - pts.X(i))
	}

	return sum, nil
}

// Midpoint integrates tabulated data with the midpoint rule, taking the
// chord value at each subinterval midpoint. On tabulated data the chord
// midpoint is the mean of the endpoint values, so the result coincides
// with Trapezoid; the rule earns its keep when the y-values come from a
// finer model than the grid.
func Midpoint(pts *core.SamplePoints) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}

	sum := 0.0
	for i := 0; i < pts.Len()-1; i++ {
		x0, x1 := pts.X(i), pts.X(i+1)
		y0, y1 := pts.Y(i), pts.Y(i+1)
		xm := (x0 + x1) / 2
		ym := y0 + (y1-y0)*(xm-x0)/(x1-x0)
		sum += (x1 - x0) * ym
	}

	return sum, nil
}

// Trapezoid integrates tabulated data with the trapezoidal rule. Exact for
// linear data; second order accurate on smooth integrands.
func Trapezoid(pts *core.SamplePoints) (float64, error) {
	if pts == nil {
		return 0, ErrNilPoints
	}

	sum := 0.0
	for i := 0; i < pts.Len()-1; i++ {
		sum += (pts.X(i+1) - pts.X(i)) * (pts.Y(i) + pts.Y(i+1)) / 2
	}

	return sum, nil
}
