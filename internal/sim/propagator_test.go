package sim_test

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/num/quat"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/metrics"
	"github.com/san-kum/strapdown/internal/motion"
	"github.com/san-kum/strapdown/internal/sim"
)

// nanProfile reports a NaN rate after a fixed time, to exercise the
// non-finite halt path.
type nanProfile struct {
	after float64
}

func (p *nanProfile) Name() string { return "nan" }

func (p *nanProfile) Rate(t float64) attitude.AngularVelocity {
	if t >= p.after {
		return attitude.AngularVelocity{X: math.NaN()}
	}
	return attitude.AngularVelocity{Z: 1}
}

func (p *nanProfile) Attitude(t float64) quat.Number { return attitude.Identity() }

// countingObserver records how many steps it saw.
type countingObserver struct {
	steps int
	lastT float64
}

func (o *countingObserver) OnStep(q quat.Number, w attitude.AngularVelocity, t float64) {
	o.steps++
	o.lastT = t
}

var _ = Describe("Propagator", func() {
	var (
		logger  golog.Logger
		profile motion.Profile
		cfg     sim.Config
	)

	BeforeEach(func() {
		logger = golog.NewDevelopmentLogger("sim-test")
		profile = motion.NewConstant(attitude.AngularVelocity{Z: math.Pi / 4})
		cfg = sim.Config{Dt: 0.01, Duration: 2, ValidateState: true}
	})

	It("rejects a non-positive dt", func() {
		p := sim.New(profile, integrators.NewDefault(), logger)
		_, err := p.Run(context.Background(), sim.Config{Dt: 0, Duration: 1})
		Expect(err).To(HaveOccurred())

		_, err = p.Run(context.Background(), sim.Config{Dt: -0.1, Duration: 1})
		Expect(err).To(HaveOccurred())
	})

	It("rejects a non-positive duration", func() {
		p := sim.New(profile, integrators.NewDefault(), logger)
		_, err := p.Run(context.Background(), sim.Config{Dt: 0.01, Duration: 0})
		Expect(err).To(HaveOccurred())
	})

	It("tracks a constant-rate profile to its analytic attitude", func() {
		p := sim.New(profile, integrators.NewDefault(), logger)
		res, err := p.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StepsTaken).To(Equal(200))

		final := res.Attitudes[len(res.Attitudes)-1]
		want := profile.Attitude(2)
		Expect(attitude.AngleBetween(want, final)).To(BeNumerically("<", 1e-8))
	})

	It("takes the final step when duration is an inexact multiple of dt", func() {
		p := sim.New(profile, integrators.NewDefault(), logger)
		res, err := p.Run(context.Background(), sim.Config{Dt: 0.1, Duration: 0.3, ValidateState: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StepsTaken).To(Equal(3))
	})

	It("keeps every recorded attitude at unit norm", func() {
		p := sim.New(motion.NewConing(0.2, 2*math.Pi), integrators.NewSuh(), logger)
		res, err := p.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		for _, q := range res.Attitudes {
			Expect(quat.Abs(q)).To(BeNumerically("~", 1, 1e-9))
		}
	})

	It("reports metric values in the result", func() {
		p := sim.New(profile, integrators.NewDefault(), logger)
		p.AddMetric(metrics.NewAttitudeError(profile))
		p.AddMetric(metrics.NewNormDrift())

		res, err := p.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Metrics).To(HaveKey("max_angle_error"))
		Expect(res.Metrics).To(HaveKey("norm_drift"))
		Expect(res.Metrics["max_angle_error"]).To(BeNumerically("<", 1e-8))
		Expect(res.Metrics["norm_drift"]).To(BeNumerically("<", 1e-12))
	})

	It("notifies observers once per accepted step", func() {
		obs := &countingObserver{}
		p := sim.New(profile, integrators.NewDefault(), logger)
		p.AddObserver(obs)

		_, err := p.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.steps).To(Equal(200))
		Expect(obs.lastT).To(BeNumerically("~", 2, 1e-9))
	})

	It("returns early when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := sim.New(profile, integrators.NewDefault(), logger)
		res, err := p.Run(ctx, cfg)
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.StepsTaken).To(Equal(0))
	})

	It("halts on a non-finite attitude when validation is on", func() {
		p := sim.New(&nanProfile{after: 0.5}, integrators.NewDefault(), logger)
		res, err := p.Run(context.Background(), cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Errors).To(HaveLen(1))
		Expect(res.StepsTaken).To(BeNumerically("<", 200))

		// Recorded attitudes all predate the halt and stay finite.
		for _, q := range res.Attitudes {
			Expect(attitude.IsFinite(q)).To(BeTrue())
		}
	})

	It("propagates the NaN when validation is off", func() {
		p := sim.New(&nanProfile{after: 0.5}, integrators.NewDefault(), logger)
		off := cfg
		off.ValidateState = false
		res, err := p.Run(context.Background(), off)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.StepsTaken).To(Equal(200))
		final := res.Attitudes[len(res.Attitudes)-1]
		Expect(attitude.IsFinite(final)).To(BeFalse())
	})
})

var _ = Describe("Comparison", func() {
	It("runs every scheme and keys results by type", func() {
		logger := golog.NewDevelopmentLogger("sim-test")
		profile := motion.NewConing(0.25, 2*math.Pi)
		cmp := sim.NewComparison(profile, integrators.Types(), logger)
		cmp.SetMetrics(func() []sim.Metric {
			return []sim.Metric{metrics.NewAttitudeError(profile)}
		})

		res, err := cmp.Run(context.Background(), sim.Config{Dt: 0.005, Duration: 1, ValidateState: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(res).To(HaveLen(len(integrators.Types())))

		// Coning separates the schemes: the closed-form corrections must
		// beat the uncorrected first-order update.
		eulerErr := res[integrators.EulerMethod].Metrics["max_angle_error"]
		for _, typ := range []integrators.Type{integrators.Suh, integrators.Trawny, integrators.Yuan} {
			Expect(res[typ].Metrics["max_angle_error"]).To(BeNumerically("<", eulerErr))
		}
	})

	It("surfaces an unknown scheme as an error", func() {
		logger := golog.NewDevelopmentLogger("sim-test")
		profile := motion.NewConstant(attitude.AngularVelocity{Z: 1})
		cmp := sim.NewComparison(profile, []integrators.Type{integrators.Type(99)}, logger)
		_, err := cmp.Run(context.Background(), sim.DefaultConfig())
		Expect(err).To(HaveOccurred())
	})
})
