package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/stickslip/internal/dynamo"
)

const (
	DefaultCycles       = 5
	DefaultCompareCount = 3
	DefaultTolerance    = 1e-2
	DefaultLogLevel     = "info"
)

type Config struct {
	Params      dynamo.Params     `yaml:"params"`
	Integration IntegrationConfig `yaml:"integration"`
	Cycles      CyclesConfig      `yaml:"cycles"`
	LogLevel    string            `yaml:"log_level"`
}

type IntegrationConfig struct {
	dynamo.Config   `yaml:",inline"`
	InitialVelocity float64 `yaml:"initial_velocity"`
}

type CyclesConfig struct {
	Count int `yaml:"count"`

	// CompareCount is how many turning points the compare command checks
	// against the analytic record, within Tolerance (relative).
	CompareCount int     `yaml:"compare_count"`
	Tolerance    float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Params: dynamo.DefaultParams(),
		Integration: IntegrationConfig{
			Config: dynamo.DefaultConfig(),
		},
		Cycles: CyclesConfig{
			Count:        DefaultCycles,
			CompareCount: DefaultCompareCount,
			Tolerance:    DefaultTolerance,
		},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads a YAML file over the defaults, so omitted keys keep their
// default values.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a YAML file over base, which is modified and returned.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return base, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if err := c.Params.Validate(); err != nil {
		return err
	}
	if err := c.Integration.Validate(); err != nil {
		return err
	}
	if c.Cycles.Count < 1 {
		return fmt.Errorf("%w: cycles.count must be at least 1, got %d", dynamo.ErrInvalidConfig, c.Cycles.Count)
	}
	if c.Cycles.CompareCount < 1 {
		return fmt.Errorf("%w: cycles.compare_count must be at least 1, got %d", dynamo.ErrInvalidConfig, c.Cycles.CompareCount)
	}
	if c.Cycles.Tolerance <= 0 {
		return fmt.Errorf("%w: cycles.tolerance must be positive, got %g", dynamo.ErrInvalidConfig, c.Cycles.Tolerance)
	}
	return nil
}

func (c *Config) GetParams() dynamo.Params {
	return c.Params
}

// GetIntegration returns the integration settings and the initial velocity.
func (c *Config) GetIntegration() (dynamo.Config, float64) {
	return c.Integration.Config, c.Integration.InitialVelocity
}
