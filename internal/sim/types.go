// Package sim drives attitude propagation: it samples a motion profile at
// the endpoints of each interval, feeds the samples through a quaternion
// integrator, and collects the resulting attitude history together with
// per-run metrics.
package sim

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
)

// Metric accumulates a per-run quality measure over observed steps.
type Metric interface {
	Name() string
	Observe(q quat.Number, w attitude.AngularVelocity, t float64)
	Value() float64
	Reset()
}

// Observer is notified after every accepted step.
type Observer interface {
	OnStep(q quat.Number, w attitude.AngularVelocity, t float64)
}

// Config controls one propagation run.
type Config struct {
	Dt            float64 // sampling interval, s
	Duration      float64 // total run time, s
	ValidateState bool    // halt when the attitude goes non-finite
}

// DefaultConfig returns a run configuration suited to bench-top IMU rates.
func DefaultConfig() Config {
	return Config{
		Dt:            0.005,
		Duration:      10.0,
		ValidateState: true,
	}
}

func (c Config) validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("sim: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("sim: duration must be positive, got %g", c.Duration)
	}
	return nil
}

// Result is the collected output of a propagation run.
type Result struct {
	Times      []float64
	Attitudes  []quat.Number
	Rates      []attitude.AngularVelocity
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// StepError records a propagation halt at a specific step.
type StepError struct {
	Step    int
	Time    float64
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("sim: step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}
