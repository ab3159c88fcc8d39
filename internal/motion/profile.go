// Package motion provides synthetic angular-velocity profiles with
// closed-form reference attitudes. The profiles drive the integrators in
// simulations and accuracy comparisons: each one reports the body rate at
// any time plus the exact attitude the rate history integrates to.
package motion

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Profile is a deterministic angular-motion scenario. Propagation starts
// from Attitude(0), which is identity for every profile except coning
// (whose cone is already tilted at t=0).
type Profile interface {
	// Name identifies the profile for registries and output.
	Name() string

	// Rate returns the body-frame angular velocity at time t.
	Rate(t float64) attitude.AngularVelocity

	// Attitude returns the exact attitude at time t.
	Attitude(t float64) quat.Number
}

// Spec is the parameter set a profile is built from; config files and CLI
// flags map onto it. Fields not used by the named profile are ignored.
type Spec struct {
	Name      string  // constant | ramp | sinusoid | coning
	RateX     float64 // constant: body rate, rad/s
	RateY     float64
	RateZ     float64
	Slope     float64 // ramp: rate increase about z, rad/s^2
	Amplitude float64 // sinusoid: peak rate about z, rad/s
	Frequency float64 // sinusoid/coning: circular frequency, rad/s
	Beta      float64 // coning: half-angle, rad
}

// Names lists the available profile names.
func Names() []string {
	return []string{"constant", "ramp", "sinusoid", "coning"}
}

// FromSpec builds the profile described by s.
func FromSpec(s Spec) (Profile, error) {
	switch s.Name {
	case "constant":
		return NewConstant(attitude.AngularVelocity{X: s.RateX, Y: s.RateY, Z: s.RateZ}), nil
	case "ramp":
		return NewRamp(s.RateZ, s.Slope), nil
	case "sinusoid":
		if s.Frequency <= 0 {
			return nil, fmt.Errorf("motion: sinusoid frequency must be positive, got %g", s.Frequency)
		}
		return NewSinusoid(s.Amplitude, s.Frequency), nil
	case "coning":
		if s.Frequency <= 0 {
			return nil, fmt.Errorf("motion: coning frequency must be positive, got %g", s.Frequency)
		}
		return NewConing(s.Beta, s.Frequency), nil
	default:
		return nil, fmt.Errorf("motion: unknown profile %q", s.Name)
	}
}
