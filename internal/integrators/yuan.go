package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// yuan folds the rate-variation correction into the rotation vector itself
// before taking a single exponential: phi = wavg*dt + (dt^2/12)(w0 x w1).
// This is the two-sample coning form; same structure as trawny, different
// correction placement and therefore different error constants.
type yuan struct{}

// NewYuan returns the Yuan closed-form integrator.
func NewYuan() Integrator { return yuan{} }

func (yuan) Type() Type { return Yuan }

func (yuan) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}

	phi := attitude.Mid(w0, w1).R3().Mul(dt).Add(attitude.Cross(w0, w1).Mul(dt * dt / 12))
	return attitude.Normalize(quat.Mul(q0, attitude.Exp(phi))), nil
}
