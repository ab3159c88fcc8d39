// Package config holds the yaml-backed run configuration for the strapdown
// CLI: which motion profile to fly, which integration scheme to use, and
// the sampling parameters.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/strapdown/internal/integrators"
	"github.com/san-kum/strapdown/internal/motion"
)

const (
	DefaultDt       = 0.005
	DefaultDuration = 10.0
)

type Config struct {
	Profile    string       `yaml:"profile"`
	Integrator string       `yaml:"integrator"`
	Dt         float64      `yaml:"dt"`
	Duration   float64      `yaml:"duration"`
	Motion     MotionConfig `yaml:"motion"`
}

// MotionConfig parameterizes the selected profile; fields the profile does
// not use are ignored.
type MotionConfig struct {
	RateX     float64 `yaml:"rate_x"`
	RateY     float64 `yaml:"rate_y"`
	RateZ     float64 `yaml:"rate_z"`
	Slope     float64 `yaml:"slope"`
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	Beta      float64 `yaml:"beta"`
}

func DefaultConfig() *Config {
	return &Config{
		Profile:    "constant",
		Integrator: integrators.DefaultType.String(),
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Motion: MotionConfig{
			RateZ: 0.5,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the fields shared by every run; profile-specific
// parameters are validated when the profile is built.
func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return errors.Errorf("config: dt must be positive, got %g", c.Dt)
	}
	if c.Duration <= 0 {
		return errors.Errorf("config: duration must be positive, got %g", c.Duration)
	}
	if _, err := integrators.ParseType(c.Integrator); err != nil {
		return errors.Wrap(err, "config")
	}
	if _, err := motion.FromSpec(c.Spec()); err != nil {
		return errors.Wrap(err, "config")
	}
	return nil
}

// Spec maps the motion section onto the profile parameter set.
func (c *Config) Spec() motion.Spec {
	return motion.Spec{
		Name:      c.Profile,
		RateX:     c.Motion.RateX,
		RateY:     c.Motion.RateY,
		RateZ:     c.Motion.RateZ,
		Slope:     c.Motion.Slope,
		Amplitude: c.Motion.Amplitude,
		Frequency: c.Motion.Frequency,
		Beta:      c.Motion.Beta,
	}
}
