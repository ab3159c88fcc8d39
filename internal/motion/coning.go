package motion

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Coning is the classical coning motion: the body z axis sweeps a cone of
// half-angle beta at circular frequency omega. The attitude is
//
//	q(t) = (cos(beta/2), sin(beta/2)cos(omega t), sin(beta/2)sin(omega t), 0)
//
// and the body rate follows from w = 2 q* dq/dt. Coning excites exactly the
// rate-variation terms the closed-form integrators correct for, making it
// the standard stress profile for them.
type Coning struct {
	Beta  float64 // half-angle, rad
	Omega float64 // rad/s
}

func NewConing(beta, omega float64) *Coning {
	return &Coning{Beta: beta, Omega: omega}
}

func (c *Coning) Name() string { return "coning" }

func (c *Coning) Rate(t float64) attitude.AngularVelocity {
	sb := math.Sin(c.Beta)
	return attitude.AngularVelocity{
		X: -c.Omega * sb * math.Sin(c.Omega*t),
		Y: c.Omega * sb * math.Cos(c.Omega*t),
		Z: -c.Omega * (1 - math.Cos(c.Beta)),
	}
}

func (c *Coning) Attitude(t float64) quat.Number {
	h := c.Beta / 2
	return quat.Number{
		Real: math.Cos(h),
		Imag: math.Sin(h) * math.Cos(c.Omega*t),
		Jmag: math.Sin(h) * math.Sin(c.Omega*t),
	}
}
