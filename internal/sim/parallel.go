package sim

import (
	"context"
	"sync"

	"github.com/edaniels/golog"

	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/motion"
)

// Comparison propagates the same profile through several integration
// schemes concurrently. Each scheme gets its own Propagator and its own
// metric instances, so runs share nothing mutable.
type Comparison struct {
	profile motion.Profile
	types   []integrators.Type
	metrics func() []Metric
	logger  golog.Logger
}

func NewComparison(profile motion.Profile, types []integrators.Type, logger golog.Logger) *Comparison {
	return &Comparison{
		profile: profile,
		types:   types,
		logger:  logger,
	}
}

// SetMetrics installs a factory invoked once per scheme to build that run's
// metric set.
func (c *Comparison) SetMetrics(f func() []Metric) { c.metrics = f }

// Run executes one propagation per scheme and returns the results keyed by
// scheme. The first error encountered is returned after all runs finish.
func (c *Comparison) Run(ctx context.Context, cfg Config) (map[integrators.Type]*Result, error) {
	results := make([]*Result, len(c.types))
	errs := make([]error, len(c.types))

	var wg sync.WaitGroup
	for i, typ := range c.types {
		wg.Add(1)
		go func(idx int, typ integrators.Type) {
			defer wg.Done()

			integ, err := integrators.New(typ)
			if err != nil {
				errs[idx] = err
				return
			}

			p := New(c.profile, integ, c.logger)
			if c.metrics != nil {
				for _, m := range c.metrics() {
					p.AddMetric(m)
				}
			}

			results[idx], errs[idx] = p.Run(ctx, cfg)
		}(i, typ)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	out := make(map[integrators.Type]*Result, len(c.types))
	for i, typ := range c.types {
		out[typ] = results[i]
	}
	return out, nil
}
