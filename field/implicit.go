package field

import "github.com/katalvlaran/smcoctree/vec"

// gradientStep is the centered-difference step h used by ImplicitOracle's
// Gradient, matching the reference implementation's gradient() (h = 1e-5).
const gradientStep = 1e-5

// ImplicitOracle is a Field Oracle over a user-supplied scalar function F
// and a sub-level-set threshold Tau: a point p is inside the solid iff
// F(p) < Tau.
type ImplicitOracle struct {
	F   func(vec.Point) float64
	Tau float64
}

// NewImplicitOracle builds an ImplicitOracle from a scalar field and
// threshold.
func NewImplicitOracle(f func(vec.Point) float64, tau float64) *ImplicitOracle {
	return &ImplicitOracle{F: f, Tau: tau}
}

// Inside implements Oracle: p is inside iff F(p) < Tau.
func (o *ImplicitOracle) Inside(p vec.Point) bool {
	return o.F(p) < o.Tau
}

// Value implements Oracle, always returning the field sample.
func (o *ImplicitOracle) Value(p vec.Point) (float64, bool) {
	return o.F(p), true
}

// Gradient implements Oracle using a centered finite difference with step
// gradientStep on each axis, matching the reference gradient() method.
func (o *ImplicitOracle) Gradient(p vec.Point) (vec.Vector, bool) {
	h := gradientStep
	gx := (o.F(vec.New(p.X+h, p.Y, p.Z)) - o.F(vec.New(p.X-h, p.Y, p.Z))) / (2 * h)
	gy := (o.F(vec.New(p.X, p.Y+h, p.Z)) - o.F(vec.New(p.X, p.Y-h, p.Z))) / (2 * h)
	gz := (o.F(vec.New(p.X, p.Y, p.Z+h)) - o.F(vec.New(p.X, p.Y, p.Z-h))) / (2 * h)
	return vec.New(gx, gy, gz), true
}

// Threshold implements Thresholder, returning Tau.
func (o *ImplicitOracle) Threshold() float64 { return o.Tau }
