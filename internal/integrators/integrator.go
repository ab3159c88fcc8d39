// Package integrators implements the quaternion step integrators of
// strapdown attitude propagation. Each scheme advances a unit attitude
// quaternion across one gyro sampling interval from the angular-velocity
// samples bracketing it:
//
//	q1, err := integ.Integrate(q0, w0, w1, dt)
//
// The six schemes trade accuracy order against arithmetic cost. Euler and
// Midpoint are first/second order single-derivative updates, RungeKutta is
// the classical four-stage evaluation, and Suh, Trawny and Yuan are
// closed-form updates built from the exponential map of the averaged
// rotation vector plus a rate-variation correction.
//
// Integrator values are stateless and safe for concurrent use; a call does
// no heap allocation.
package integrators

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// ErrNonPositiveStep is returned when a step interval is zero or negative.
var ErrNonPositiveStep = errors.New("integrators: step interval must be positive")

// Type identifies one of the integration schemes.
type Type int

const (
	EulerMethod Type = iota
	MidPoint
	RungeKutta
	Suh
	Trawny
	Yuan
)

// DefaultType is the scheme used when the caller expresses no preference.
// RungeKutta has the best accuracy/cost trade-off of the six.
const DefaultType = RungeKutta

// Integrator advances an attitude quaternion across one sampling interval.
type Integrator interface {
	// Integrate rotates q0 by the angular motion implied by the bracketing
	// rate samples w0 (interval start) and w1 (interval end) over dt
	// seconds. q0 must be unit; the result is renormalized before return.
	// A non-positive dt yields ErrNonPositiveStep. Non-finite rates are not
	// validated and propagate into the result.
	Integrate(q0 quat.Number, w0, w1 attitude.AngularVelocity, dt float64) (quat.Number, error)

	// Type reports the identifier the instance was built from.
	Type() Type
}

// New returns the integrator for the given scheme identifier.
func New(t Type) (Integrator, error) {
	switch t {
	case EulerMethod:
		return euler{}, nil
	case MidPoint:
		return midpoint{}, nil
	case RungeKutta:
		return rk4{}, nil
	case Suh:
		return suh{}, nil
	case Trawny:
		return trawny{}, nil
	case Yuan:
		return yuan{}, nil
	default:
		return nil, fmt.Errorf("integrators: unknown type %d", int(t))
	}
}

// NewDefault returns the default scheme (RungeKutta).
func NewDefault() Integrator {
	return rk4{}
}

func (t Type) String() string {
	switch t {
	case EulerMethod:
		return "euler"
	case MidPoint:
		return "midpoint"
	case RungeKutta:
		return "rk4"
	case Suh:
		return "suh"
	case Trawny:
		return "trawny"
	case Yuan:
		return "yuan"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ParseType maps a config/CLI name to a scheme identifier.
func ParseType(name string) (Type, error) {
	switch name {
	case "euler":
		return EulerMethod, nil
	case "midpoint":
		return MidPoint, nil
	case "rk4", "runge-kutta":
		return RungeKutta, nil
	case "suh":
		return Suh, nil
	case "trawny":
		return Trawny, nil
	case "yuan":
		return Yuan, nil
	default:
		return 0, fmt.Errorf("integrators: unknown integrator %q", name)
	}
}

// Types lists every scheme identifier in declaration order.
func Types() []Type {
	return []Type{EulerMethod, MidPoint, RungeKutta, Suh, Trawny, Yuan}
}
