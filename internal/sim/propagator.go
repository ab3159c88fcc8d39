package sim

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/motion"
)

// Propagator runs one motion profile through one integrator.
type Propagator struct {
	profile   motion.Profile
	integ     integrators.Integrator
	metrics   []Metric
	observers []Observer
	logger    golog.Logger
}

func New(profile motion.Profile, integ integrators.Integrator, logger golog.Logger) *Propagator {
	return &Propagator{
		profile: profile,
		integ:   integ,
		logger:  logger,
	}
}

func (p *Propagator) AddMetric(m Metric)     { p.metrics = append(p.metrics, m) }
func (p *Propagator) AddObserver(o Observer) { p.observers = append(p.observers, o) }

// Run propagates the profile's attitude from t=0 to cfg.Duration in steps
// of cfg.Dt, sampling the rate at both endpoints of every interval. It
// returns what was collected up to the point of interruption when the
// context is canceled.
func (p *Propagator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Rounded so ratios like 0.3/0.1 do not lose their final step to
	// floating-point truncation.
	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		Times:     make([]float64, 0, steps+1),
		Attitudes: make([]quat.Number, 0, steps+1),
		Rates:     make([]attitude.AngularVelocity, 0, steps+1),
		Metrics:   make(map[string]float64),
	}

	for _, m := range p.metrics {
		m.Reset()
	}

	q := p.profile.Attitude(0)
	t := 0.0
	result.Times = append(result.Times, t)
	result.Attitudes = append(result.Attitudes, q)
	result.Rates = append(result.Rates, p.profile.Rate(0))

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		w0 := p.profile.Rate(t)
		w1 := p.profile.Rate(t + cfg.Dt)

		next, err := p.integ.Integrate(q, w0, w1, cfg.Dt)
		if err != nil {
			return result, err
		}
		t += cfg.Dt

		if cfg.ValidateState && !attitude.IsFinite(next) {
			stepErr := StepError{Step: i, Time: t, Message: "non-finite attitude"}
			result.Errors = append(result.Errors, stepErr)
			p.logger.Warnw("propagation halted", "step", i, "time", t)
			break
		}

		q = next
		result.StepsTaken++

		for _, m := range p.metrics {
			m.Observe(q, w1, t)
		}
		for _, o := range p.observers {
			o.OnStep(q, w1, t)
		}

		result.Times = append(result.Times, t)
		result.Attitudes = append(result.Attitudes, q)
		result.Rates = append(result.Rates, w1)
	}

	for _, m := range p.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}
