package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/edaniels/golog"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/strapdown/internal/attitude"
	"github.com/san-kum/strapdown/internal/config"
	"github.com/san-kum/strapdown/internal/export"
	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/metrics"
	"github.com/san-kum/strapdown/internal/motion"
	"github.com/san-kum/strapdown/internal/sim"
	"github.com/san-kum/strapdown/internal/tui"
)

var (
	dt         float64
	duration   float64
	integrator string
	configFile string
	preset     string
	outPath    string
	frameRate  int
	plotErrors bool
	rateX      float64
	rateY      float64
	rateZ      float64
	slope      float64
	amplitude  float64
	frequency  float64
	beta       float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "strapdown",
		Short: "quaternion attitude propagation lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [profile]",
		Short: "propagate a motion profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPropagation,
	}
	addRunFlags(runCmd)
	runCmd.Flags().StringVar(&integrator, "integrator", integrators.DefaultType.String(), "integration scheme")
	runCmd.Flags().BoolVar(&plotErrors, "plot", false, "plot angle error over time")

	compareCmd := &cobra.Command{
		Use:   "compare [profile]",
		Short: "compare integration schemes on the same profile",
		Args:  cobra.MaximumNArgs(1),
		RunE:  compareSchemes,
	}
	addRunFlags(compareCmd)

	liveCmd := &cobra.Command{
		Use:   "live [profile]",
		Short: "propagate with live terminal visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addRunFlags(liveCmd)
	liveCmd.Flags().StringVar(&integrator, "integrator", integrators.DefaultType.String(), "integration scheme")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [profile]",
		Short: "propagate and export the trajectory to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addRunFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&integrator, "integrator", integrators.DefaultType.String(), "integration scheme")
	exportCSVCmd.Flags().StringVar(&outPath, "out", "run.csv", "output file path")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPROFILE\tINTEGRATOR\tDT\tDURATION")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%s\t%gs\t%gs\n",
					name, p.Profile, p.Integrator, p.Dt, p.Duration)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(runCmd, compareCmd, liveCmd, exportCSVCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	cmd.Flags().Float64Var(&rateX, "rate-x", 0, "body rate about x (rad/s)")
	cmd.Flags().Float64Var(&rateY, "rate-y", 0, "body rate about y (rad/s)")
	cmd.Flags().Float64Var(&rateZ, "rate-z", 0.5, "body rate about z (rad/s)")
	cmd.Flags().Float64Var(&slope, "slope", 0.5, "rate slope (ramp)")
	cmd.Flags().Float64Var(&amplitude, "amplitude", 1.0, "rate amplitude (sinusoid)")
	cmd.Flags().Float64Var(&frequency, "frequency", 3.14159, "angular frequency (sinusoid, coning)")
	cmd.Flags().Float64Var(&beta, "beta", 0.25, "half-cone angle (coning)")
}

// resolveConfig merges preset, config file and flags into one run
// configuration. Flags set explicitly on the command line win over both.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(args) > 0 {
		cfg.Profile = args[0]
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("rate-x") {
		cfg.Motion.RateX = rateX
	}
	if cmd.Flags().Changed("rate-y") {
		cfg.Motion.RateY = rateY
	}
	if cmd.Flags().Changed("rate-z") {
		cfg.Motion.RateZ = rateZ
	}
	if cmd.Flags().Changed("slope") {
		cfg.Motion.Slope = slope
	}
	if cmd.Flags().Changed("amplitude") {
		cfg.Motion.Amplitude = amplitude
	}
	if cmd.Flags().Changed("frequency") {
		cfg.Motion.Frequency = frequency
	}
	if cmd.Flags().Changed("beta") {
		cfg.Motion.Beta = beta
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildRun(cfg *config.Config) (motion.Profile, integrators.Integrator, sim.Config, error) {
	profile, err := motion.FromSpec(cfg.Spec())
	if err != nil {
		return nil, nil, sim.Config{}, err
	}
	typ, err := integrators.ParseType(cfg.Integrator)
	if err != nil {
		return nil, nil, sim.Config{}, err
	}
	integ, err := integrators.New(typ)
	if err != nil {
		return nil, nil, sim.Config{}, err
	}
	simCfg := sim.DefaultConfig()
	simCfg.Dt = cfg.Dt
	simCfg.Duration = cfg.Duration
	return profile, integ, simCfg, nil
}

func runPropagation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	profile, integ, simCfg, err := buildRun(cfg)
	if err != nil {
		return err
	}

	logger := golog.NewLogger("strapdown")
	p := sim.New(profile, integ, logger)
	p.AddMetric(metrics.NewAttitudeError(profile))
	p.AddMetric(metrics.NewMeanAttitudeError(profile))
	p.AddMetric(metrics.NewNormDrift())

	fmt.Printf("propagating %s with %s...\n", profile.Name(), integ.Type())
	start := time.Now()

	result, err := p.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d\n", result.StepsTaken)
	for _, stepErr := range result.Errors {
		fmt.Printf("halted: %v\n", stepErr)
	}

	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.3e\n", name, result.Metrics[name])
	}

	q := result.Attitudes[len(result.Attitudes)-1]
	roll, pitch, yaw := attitude.EulerAngles(q)
	fmt.Printf("\nfinal attitude: q = (%+.6f, %+.6f, %+.6f, %+.6f)\n", q.Real, q.Imag, q.Jmag, q.Kmag)
	fmt.Printf("                roll %.4f  pitch %.4f  yaw %.4f rad\n", roll, pitch, yaw)

	if plotErrors {
		data := make([]float64, len(result.Times))
		for i, t := range result.Times {
			data[i] = attitude.AngleBetween(profile.Attitude(t), result.Attitudes[i])
		}
		fmt.Println("\nangle error vs analytic (rad):")
		fmt.Println(asciigraph.Plot(data, asciigraph.Width(70), asciigraph.Height(10)))
	}

	return nil
}

func compareSchemes(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	profile, _, simCfg, err := buildRun(cfg)
	if err != nil {
		return err
	}

	logger := golog.NewLogger("strapdown")
	cmp := sim.NewComparison(profile, integrators.Types(), logger)
	cmp.SetMetrics(func() []sim.Metric {
		return []sim.Metric{
			metrics.NewAttitudeError(profile),
			metrics.NewMeanAttitudeError(profile),
			metrics.NewNormDrift(),
		}
	})

	fmt.Printf("comparing schemes on %s (dt=%gs, %gs)...\n\n", profile.Name(), simCfg.Dt, simCfg.Duration)

	results, err := cmp.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tMAX ERR\tMEAN ERR\tNORM DRIFT")
	for _, typ := range integrators.Types() {
		res := results[typ]
		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%.3e\n",
			typ,
			res.Metrics["max_angle_error"],
			res.Metrics["mean_angle_error"],
			res.Metrics["norm_drift"],
		)
	}
	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	profile, integ, simCfg, err := buildRun(cfg)
	if err != nil {
		return err
	}
	return tui.Run(profile, integ, simCfg, frameRate)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	profile, integ, simCfg, err := buildRun(cfg)
	if err != nil {
		return err
	}

	logger := golog.NewLogger("strapdown")
	p := sim.New(profile, integ, logger)
	result, err := p.Run(context.Background(), simCfg)
	if err != nil {
		return err
	}

	if err := export.WriteCSVFile(outPath, result, profile); err != nil {
		return err
	}
	fmt.Printf("wrote %d samples to %s\n", len(result.Times), outPath)
	return nil
}
