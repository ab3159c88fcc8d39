package motion

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Constant holds a fixed body rate; the attitude is the axis-angle
// exponential of w*t.
type Constant struct {
	W attitude.AngularVelocity
}

func NewConstant(w attitude.AngularVelocity) *Constant {
	return &Constant{W: w}
}

func (c *Constant) Name() string { return "constant" }

func (c *Constant) Rate(t float64) attitude.AngularVelocity { return c.W }

func (c *Constant) Attitude(t float64) quat.Number {
	return attitude.Exp(c.W.R3().Mul(t))
}
