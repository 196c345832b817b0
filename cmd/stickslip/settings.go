package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/config"
	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/logging"
)

// loadSettings resolves the configuration: defaults, then preset, then
// config file, then any flag given on the command line.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mass") {
		cfg.Params.Mass = mass
	}
	if flags.Changed("k") {
		cfg.Params.Stiffness = stiffness
	}
	if flags.Changed("g") {
		cfg.Params.Gravity = gravity
	}
	if flags.Changed("mu-s") {
		cfg.Params.MuStatic = muStatic
	}
	if flags.Changed("mu-d") {
		cfg.Params.MuDynamic = muDynamic
	}
	if flags.Changed("x0") {
		cfg.Params.InitialDisplacement = x0
	}
	if flags.Changed("v0") {
		cfg.Integration.InitialVelocity = v0
	}
	if flags.Changed("dt") {
		cfg.Integration.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Integration.Duration = duration
	}
	if flags.Changed("eps") {
		cfg.Integration.VelocityEpsilon = epsilon
	}
	if flags.Changed("n") {
		cfg.Cycles.Count = numCycles
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.NewLogger(cfg.LogLevel, os.Stderr)
}

// requireRelease rejects a nonzero initial velocity for commands that
// compare against the analytic cycles, which start from rest.
func requireRelease(vel float64) error {
	if vel != 0 {
		return fmt.Errorf("%w: analytic cycles start from rest, got v0=%g", dynamo.ErrInvalidConfig, vel)
	}
	return nil
}
