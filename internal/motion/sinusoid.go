package motion

import (
	"math"

	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Sinusoid oscillates about the body z axis, w(t) = A*sin(f*t). The
// integrated angle is A*(1-cos(f*t))/f.
type Sinusoid struct {
	Amplitude float64 // rad/s
	Frequency float64 // rad/s
}

func NewSinusoid(amplitude, frequency float64) *Sinusoid {
	return &Sinusoid{Amplitude: amplitude, Frequency: frequency}
}

func (s *Sinusoid) Name() string { return "sinusoid" }

func (s *Sinusoid) Rate(t float64) attitude.AngularVelocity {
	return attitude.AngularVelocity{Z: s.Amplitude * math.Sin(s.Frequency*t)}
}

func (s *Sinusoid) Attitude(t float64) quat.Number {
	return attitude.Exp(r3.Vector{Z: s.Amplitude * (1 - math.Cos(s.Frequency*t)) / s.Frequency})
}
