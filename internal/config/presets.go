package config

import (
	"math"
	"sort"
)

// Presets are ready-made scenarios for the CLI; each is a complete, valid
// configuration.
var presets = map[string]*Config{
	"gentle-yaw": {
		Profile:    "constant",
		Integrator: "rk4",
		Dt:         0.005,
		Duration:   10,
		Motion:     MotionConfig{RateZ: 0.5},
	},
	"tumble": {
		Profile:    "constant",
		Integrator: "rk4",
		Dt:         0.002,
		Duration:   5,
		Motion:     MotionConfig{RateX: 2.1, RateY: -1.3, RateZ: 3.7},
	},
	"spin-up": {
		Profile:    "ramp",
		Integrator: "rk4",
		Dt:         0.005,
		Duration:   8,
		Motion:     MotionConfig{RateZ: 0.2, Slope: 0.5},
	},
	"swing": {
		Profile:    "sinusoid",
		Integrator: "rk4",
		Dt:         0.005,
		Duration:   10,
		Motion:     MotionConfig{Amplitude: 1.5, Frequency: math.Pi},
	},
	"coning-slow": {
		Profile:    "coning",
		Integrator: "trawny",
		Dt:         0.005,
		Duration:   20,
		Motion:     MotionConfig{Beta: 0.1, Frequency: math.Pi},
	},
	"coning-fast": {
		Profile:    "coning",
		Integrator: "trawny",
		Dt:         0.001,
		Duration:   5,
		Motion:     MotionConfig{Beta: 0.25, Frequency: 4 * math.Pi},
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
