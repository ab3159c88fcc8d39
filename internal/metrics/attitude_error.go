// Package metrics implements per-run quality measures for attitude
// propagation: rotation-angle error against an analytic reference and
// unit-norm drift. Each metric follows the Name/Observe/Value/Reset
// contract consumed by the propagation driver.
package metrics

import (
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/motion"
)

// AttitudeError tracks the largest rotation-angle deviation from the
// profile's analytic attitude, in radians.
type AttitudeError struct {
	ref     motion.Profile
	maxErr  float64
	samples int
}

func NewAttitudeError(ref motion.Profile) *AttitudeError {
	return &AttitudeError{ref: ref}
}

func (m *AttitudeError) Name() string { return "max_angle_error" }

func (m *AttitudeError) Observe(q quat.Number, w attitude.AngularVelocity, t float64) {
	err := attitude.AngleBetween(m.ref.Attitude(t), q)
	if err > m.maxErr {
		m.maxErr = err
	}
	m.samples++
}

func (m *AttitudeError) Value() float64 { return m.maxErr }

func (m *AttitudeError) Reset() {
	m.maxErr = 0
	m.samples = 0
}

// MeanAttitudeError tracks the mean rotation-angle deviation from the
// profile's analytic attitude, in radians.
type MeanAttitudeError struct {
	ref     motion.Profile
	total   float64
	samples int
}

func NewMeanAttitudeError(ref motion.Profile) *MeanAttitudeError {
	return &MeanAttitudeError{ref: ref}
}

func (m *MeanAttitudeError) Name() string { return "mean_angle_error" }

func (m *MeanAttitudeError) Observe(q quat.Number, w attitude.AngularVelocity, t float64) {
	m.total += attitude.AngleBetween(m.ref.Attitude(t), q)
	m.samples++
}

func (m *MeanAttitudeError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanAttitudeError) Reset() {
	m.total = 0
	m.samples = 0
}
