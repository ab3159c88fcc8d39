package integrators

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// rk4 is the classical four-stage Runge-Kutta evaluation of
// dq/dt = 0.5 * q * (0, w(t)), with w(t) linearly interpolated between the
// bracketing samples at the stage times. Local truncation error O(dt^5); the
// most arithmetic of the six and the default scheme.
type rk4 struct{}

// NewRK4 returns the fourth-order Runge-Kutta integrator.
func NewRK4() Integrator { return rk4{} }

func (rk4) Type() Type { return RungeKutta }

func (rk4) Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error) {
	if dt <= 0 {
		return quat.Number{}, ErrNonPositiveStep
	}

	wm := attitude.Mid(w0, w1)

	k1 := attitude.Derivative(q0, w0)
	k2 := attitude.Derivative(quat.Add(q0, quat.Scale(dt/2, k1)), wm)
	k3 := attitude.Derivative(quat.Add(q0, quat.Scale(dt/2, k2)), wm)
	k4 := attitude.Derivative(quat.Add(q0, quat.Scale(dt, k3)), w1)

	// Standard (1,2,2,1)/6 stage weights.
	sum := quat.Add(quat.Add(k1, k4), quat.Scale(2, quat.Add(k2, k3)))
	return attitude.Normalize(quat.Add(q0, quat.Scale(dt/6, sum))), nil
}
