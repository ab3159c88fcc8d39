package motion

import (
	"math"
	"testing"

	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

func TestFromSpec(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := FromSpec(Spec{
				Name: name, RateZ: 1, Slope: 0.5, Amplitude: 1, Frequency: 2, Beta: 0.1,
			})
			test.That(t, err, test.ShouldBeNil)
			test.That(t, p.Name(), test.ShouldEqual, name)
		})
	}

	_, err := FromSpec(Spec{Name: "tumble"})
	test.That(t, err, test.ShouldNotBeNil)
}

// A zero frequency would divide the sinusoid's integrated angle by zero and
// freeze the coning sweep, so FromSpec must reject it.
func TestFromSpecRejectsNonPositiveFrequency(t *testing.T) {
	for _, name := range []string{"sinusoid", "coning"} {
		t.Run(name, func(t *testing.T) {
			_, err := FromSpec(Spec{Name: name, Amplitude: 1, Beta: 0.1, Frequency: 0})
			test.That(t, err, test.ShouldNotBeNil)

			_, err = FromSpec(Spec{Name: name, Amplitude: 1, Beta: 0.1, Frequency: -2})
			test.That(t, err, test.ShouldNotBeNil)
		})
	}
}

func TestConstant(t *testing.T) {
	p := NewConstant(attitude.AngularVelocity{Z: math.Pi / 2})
	test.That(t, p.Rate(0), test.ShouldResemble, p.Rate(3.7))

	q := p.Attitude(1)
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Cos(math.Pi/4), 1e-12)
	test.That(t, q.Kmag, test.ShouldAlmostEqual, math.Sin(math.Pi/4), 1e-12)
}

func TestRamp(t *testing.T) {
	p := NewRamp(1, 2)
	test.That(t, p.Rate(0).Z, test.ShouldAlmostEqual, 1, 1e-15)
	test.That(t, p.Rate(2).Z, test.ShouldAlmostEqual, 5, 1e-15)

	// angle(2) = 1*2 + 2*4/2 = 6
	_, _, yawish := attitude.EulerAngles(p.Attitude(2))
	wrapped := math.Mod(6+math.Pi, 2*math.Pi) - math.Pi
	test.That(t, yawish, test.ShouldAlmostEqual, wrapped, 1e-12)
}

func TestSinusoid(t *testing.T) {
	p := NewSinusoid(2, math.Pi)
	test.That(t, p.Rate(0).Z, test.ShouldAlmostEqual, 0, 1e-15)
	test.That(t, p.Rate(0.5).Z, test.ShouldAlmostEqual, 2, 1e-12)

	// One full period returns to identity.
	q := p.Attitude(2)
	test.That(t, attitude.AngleBetween(attitude.Identity(), q), test.ShouldAlmostEqual, 0, 1e-9)
}

// The coning rate must be consistent with the analytic attitude:
// dq/dt = 0.5 * q * (0, w), checked by finite difference.
func TestConingKinematicConsistency(t *testing.T) {
	p := NewConing(0.3, 2*math.Pi)
	const h = 1e-7
	for _, tm := range []float64{0, 0.13, 0.71, 1.42} {
		qa, qb := p.Attitude(tm-h), p.Attitude(tm+h)
		fd := quat.Scale(1/(2*h), quat.Sub(qb, qa))
		an := attitude.Derivative(p.Attitude(tm), p.Rate(tm))
		test.That(t, fd.Real, test.ShouldAlmostEqual, an.Real, 1e-5)
		test.That(t, fd.Imag, test.ShouldAlmostEqual, an.Imag, 1e-5)
		test.That(t, fd.Jmag, test.ShouldAlmostEqual, an.Jmag, 1e-5)
		test.That(t, fd.Kmag, test.ShouldAlmostEqual, an.Kmag, 1e-5)
	}
}

func TestConingAttitudeUnit(t *testing.T) {
	p := NewConing(0.3, 2*math.Pi)
	for _, tm := range []float64{0, 0.25, 0.5, 0.75, 1} {
		test.That(t, quat.Abs(p.Attitude(tm)), test.ShouldAlmostEqual, 1, 1e-12)
	}
}
