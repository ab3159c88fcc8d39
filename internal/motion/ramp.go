package motion

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Ramp spins about the body z axis at a linearly increasing rate
// w(t) = start + slope*t. Because the rate is linear in time, endpoint
// sampling loses nothing and the profile exposes each integrator's true
// order of accuracy.
type Ramp struct {
	Start float64 // rad/s
	Slope float64 // rad/s^2
}

func NewRamp(start, slope float64) *Ramp {
	return &Ramp{Start: start, Slope: slope}
}

func (r *Ramp) Name() string { return "ramp" }

func (r *Ramp) Rate(t float64) attitude.AngularVelocity {
	return attitude.AngularVelocity{Z: r.Start + r.Slope*t}
}

func (r *Ramp) Attitude(t float64) quat.Number {
	return attitude.Exp(r3.Vector{Z: r.Start*t + r.Slope*t*t/2})
}
