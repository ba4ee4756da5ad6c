package spline

// Boundary selects the end conditions closing the slope system.
type Boundary int

const (
	// NotAKnot demands third-derivative continuity across the second and
	// next-to-last nodes, the default when nothing about the ends is known.
	NotAKnot Boundary = iota

	// Clamped pins the end slopes to caller-supplied first derivatives.
	Clamped

	// SecondDeriv pins the end curvatures to caller-supplied second
	// derivatives (0, 0 gives the natural spline).
	SecondDeriv

	// Periodic joins the two ends with matching slope and curvature; the
	// end y-values must agree.
	Periodic
)

// Option configures spline construction.
type Option func(*config)

type config struct {
	boundary Boundary
	d0, dn   float64 // end first derivatives (Clamped)
	s0, sn   float64 // end second derivatives (SecondDeriv)
	hasD     bool
	hasS     bool
}

// WithBoundary selects the end condition.
func WithBoundary(b Boundary) Option {
	return func(c *config) { c.boundary = b }
}

// WithEndDerivatives supplies the end slopes and implies a clamped
// boundary.
func WithEndDerivatives(d0, dn float64) Option {
	return func(c *config) {
		c.boundary = Clamped
		c.d0, c.dn = d0, dn
		c.hasD = true
	}
}

// WithEndSecondDerivs supplies the end curvatures and implies a
// second-derivative boundary.
func WithEndSecondDerivs(s0, sn float64) Option {
	return func(c *config) {
		c.boundary = SecondDeriv
		c.s0, c.sn = s0, sn
		c.hasS = true
	}
}
