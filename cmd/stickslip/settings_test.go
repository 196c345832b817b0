package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/dynamo"
)

func newTestCommand(t *testing.T) *cobra.Command {
	t.Helper()
	t.Cleanup(func() {
		preset, configFile = "", ""
	})

	cmd := &cobra.Command{Use: "test"}
	addPhysicsFlags(cmd)
	addIntegrationFlags(cmd)
	cmd.Flags().IntVar(&numCycles, "n", 5, "")
	return cmd
}

func TestLoadSettings_Defaults(t *testing.T) {
	cmd := newTestCommand(t)

	cfg, err := loadSettings(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Params != dynamo.DefaultParams() {
		t.Errorf("expected reference params, got %+v", cfg.Params)
	}
}

func TestLoadSettings_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	if err := os.WriteFile(path, []byte("params:\n  mass: 40\n  stiffness: 80\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newTestCommand(t)
	preset = "frictionless"
	configFile = path
	if err := cmd.Flags().Set("k", "90"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("n", "7"); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadSettings(cmd)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Params.MuDynamic != 0 {
		t.Errorf("preset friction lost: %v", cfg.Params.MuDynamic)
	}
	if cfg.Params.Mass != 40 {
		t.Errorf("config file mass not applied: %v", cfg.Params.Mass)
	}
	if cfg.Params.Stiffness != 90 {
		t.Errorf("flag should override config file: %v", cfg.Params.Stiffness)
	}
	if cfg.Cycles.Count != 7 {
		t.Errorf("cycle count = %d, want 7", cfg.Cycles.Count)
	}
}

func TestLoadSettings_Errors(t *testing.T) {
	cmd := newTestCommand(t)
	preset = "nonexistent"
	if _, err := loadSettings(cmd); err == nil {
		t.Error("expected unknown preset error")
	}

	cmd = newTestCommand(t)
	if err := cmd.Flags().Set("dt", "-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := loadSettings(cmd); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestRequireRelease(t *testing.T) {
	tests := []struct {
		name string
		v0   float64
		ok   bool
	}{
		{"from rest", 0, true},
		{"pushed", 0.5, false},
		{"pulled", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := requireRelease(tt.v0)
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, dynamo.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestCompareRejectsInitialVelocity(t *testing.T) {
	cmd := newTestCommand(t)
	if err := cmd.Flags().Set("v0", "0.5"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("time", "1"); err != nil {
		t.Fatal(err)
	}

	if err := runCompare(cmd, nil); !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
