package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// trawny is the Trawny-Roumeliotis closed-form update: the exact exponential
// of the averaged rotation vector plus an additive first-order correction
// proportional to w0 x w1 scaled by dt^2. The correction is the commutator
// term of the transition-matrix series expressed as a quaternion product.
type trawny struct{}

// NewTrawny returns the Trawny closed-form integrator.
func NewTrawny() Integrator { return trawny{} }

func (trawny) Type() Type { return Trawny }

func (trawny) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}

	upd := attitude.Exp(attitude.Mid(w0, w1).R3().Mul(dt))
	corr := attitude.Pure(attitude.Cross(w0, w1).Mul(dt * dt / 24))
	return attitude.Normalize(quat.Mul(q0, quat.Add(upd, corr))), nil
}
