package metrics

import (
	"math"

	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// NormDrift tracks the largest deviation of the propagated quaternion's
// norm from one. Integrators renormalize every step, so anything above
// rounding noise points at a defective scheme.
type NormDrift struct {
	maxDrift float64
}

func NewNormDrift() *NormDrift {
	return &NormDrift{}
}

func (m *NormDrift) Name() string { return "norm_drift" }

func (m *NormDrift) Observe(q quat.Number, w attitude.AngularVelocity, t float64) {
	drift := math.Abs(quat.Abs(q) - 1)
	if drift > m.maxDrift {
		m.maxDrift = drift
	}
}

func (m *NormDrift) Value() float64 { return m.maxDrift }

func (m *NormDrift) Reset() { m.maxDrift = 0 }
