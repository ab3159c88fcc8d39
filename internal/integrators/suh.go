package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// suh composes the exact exponential of the averaged rotation vector with a
// second exponential built from the cross product of the bracketing samples,
// which carries the rate's change across the interval. Exact for constant
// rates, second-order-plus for smoothly varying ones, with none of rk4's
// multi-stage evaluation.
type suh struct{}

// NewSuh returns the Suh closed-form integrator.
func NewSuh() Integrator { return suh{} }

func (suh) Type() Type { return Suh }

func (suh) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}

	avg := attitude.Exp(attitude.Mid(w0, w1).R3().Mul(dt))
	corr := attitude.Exp(attitude.Cross(w0, w1).Mul(dt * dt / 12))
	return attitude.Normalize(quat.Mul(q0, quat.Mul(avg, corr))), nil
}
