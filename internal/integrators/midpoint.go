package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// midpoint evaluates the derivative at the averaged rate (w0+w1)/2, halving
// the leading error term of euler for one extra vector average. Local
// truncation error O(dt^3).
type midpoint struct{}

// NewMidpoint returns the second-order midpoint integrator.
func NewMidpoint() Integrator { return midpoint{} }

func (midpoint) Type() Type { return MidPoint }

func (midpoint) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}
	dq := attitude.Derivative(q0, attitude.Mid(w0, w1))
	return attitude.Normalize(quat.Add(q0, quat.Scale(dt, dq))), nil
}
