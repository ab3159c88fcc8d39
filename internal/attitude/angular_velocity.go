package attitude

import (
	"github.com/golang/geo/r3"
)

// AngularVelocity is an instantaneous body-frame rotation rate in rad/s
// about the x/y/z axes.
type AngularVelocity r3.Vector

// R3 returns the rate as a plain r3.Vector.
func (w AngularVelocity) R3() r3.Vector {
	return r3.Vector(w)
}

// Norm returns the magnitude of the rate in rad/s.
func (w AngularVelocity) Norm() float64 {
	return r3.Vector(w).Norm()
}

// Scale returns the rate multiplied by a scalar.
func (w AngularVelocity) Scale(s float64) AngularVelocity {
	return AngularVelocity(r3.Vector(w).Mul(s))
}

// Mid returns the arithmetic midpoint of two rate samples.
func Mid(w0, w1 AngularVelocity) AngularVelocity {
	return AngularVelocity(r3.Vector(w0).Add(r3.Vector(w1)).Mul(0.5))
}

// Lerp linearly interpolates between two rate samples; s=0 gives w0, s=1
// gives w1.
func Lerp(w0, w1 AngularVelocity, s float64) AngularVelocity {
	return AngularVelocity(r3.Vector(w0).Add(r3.Vector(w1).Sub(r3.Vector(w0)).Mul(s)))
}

// Cross returns w0 x w1. The closed-form integrators use it to capture the
// rate's change across a sampling interval.
func Cross(w0, w1 AngularVelocity) r3.Vector {
	return r3.Vector(w0).Cross(r3.Vector(w1))
}
