package config

import (
	"fmt"
	"sort"
)

func reference() *Config { return DefaultConfig() }

func frictionless() *Config {
	cfg := DefaultConfig()
	cfg.Params.MuStatic = 0
	cfg.Params.MuDynamic = 0
	return cfg
}

func sticky() *Config {
	cfg := DefaultConfig()
	cfg.Params.MuStatic = 0.15
	cfg.Params.MuDynamic = 0.05
	cfg.Integration.Duration = 30
	return cfg
}

func fine() *Config {
	cfg := DefaultConfig()
	cfg.Integration.Dt = 1e-5
	return cfg
}

func heavy() *Config {
	cfg := DefaultConfig()
	cfg.Params.Mass = 120
	cfg.Integration.Duration = 60
	return cfg
}

var Presets = map[string]func() *Config{
	"reference":    reference,
	"frictionless": frictionless,
	"sticky":       sticky,
	"fine":         fine,
	"heavy":        heavy,
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe is a one-line summary of a configuration for preset listings.
func Describe(cfg *Config) string {
	p := cfg.Params
	return fmt.Sprintf("m=%g k=%g μs=%g μd=%g x0=%g dt=%g T=%g",
		p.Mass, p.Stiffness, p.MuStatic, p.MuDynamic, p.InitialDisplacement,
		cfg.Integration.Dt, cfg.Integration.Duration)
}
