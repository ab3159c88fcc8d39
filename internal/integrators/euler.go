package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// euler is the first-order scheme: a single derivative evaluation at the
// interval start. Local truncation error O(dt^2); adequate only at very high
// sample rates.
type euler struct{}

// NewEuler returns the first-order integrator.
func NewEuler() Integrator { return euler{} }

func (euler) Type() Type { return EulerMethod }

func (euler) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}
	dq := attitude.Derivative(q0, w0)
	return attitude.Normalize(quat.Add(q0, quat.Scale(dt, dq))), nil
}
