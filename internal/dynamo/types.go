package dynamo

import (
	"fmt"
	"math"
)

const (
	DefaultMass         = 30.0
	DefaultStiffness    = 50.0
	DefaultGravity      = 9.81
	DefaultMu           = 0.05
	DefaultDisplacement = 6.0

	DefaultDt       = 1e-4
	DefaultDuration = 25.0

	// MaxSteps bounds the number of samples a single run may produce.
	MaxSteps = math.MaxInt32

	// DefaultVelocityEpsilon separates "moving" from "at rest" in the friction law.
	DefaultVelocityEpsilon = 1e-20
)

// Params is the physical parameter set of a run.
type Params struct {
	Mass                float64 `yaml:"mass"`
	Stiffness           float64 `yaml:"stiffness"`
	Gravity             float64 `yaml:"gravity"`
	MuStatic            float64 `yaml:"mu_static"`
	MuDynamic           float64 `yaml:"mu_dynamic"`
	InitialDisplacement float64 `yaml:"initial_displacement"`
}

func DefaultParams() Params {
	return Params{
		Mass:                DefaultMass,
		Stiffness:           DefaultStiffness,
		Gravity:             DefaultGravity,
		MuStatic:            DefaultMu,
		MuDynamic:           DefaultMu,
		InitialDisplacement: DefaultDisplacement,
	}
}

func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"mass", p.Mass},
		{"stiffness", p.Stiffness},
		{"gravity", p.Gravity},
		{"mu_static", p.MuStatic},
		{"mu_dynamic", p.MuDynamic},
		{"initial_displacement", p.InitialDisplacement},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidConfig, f.name, f.value)
		}
	}

	if p.Mass <= 0 {
		return fmt.Errorf("%w: mass must be positive, got %g", ErrInvalidConfig, p.Mass)
	}
	if p.Stiffness <= 0 {
		return fmt.Errorf("%w: stiffness must be positive, got %g", ErrInvalidConfig, p.Stiffness)
	}
	if p.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %g", ErrInvalidConfig, p.Gravity)
	}
	if p.MuStatic < 0 {
		return fmt.Errorf("%w: mu_static must be non-negative, got %g", ErrInvalidConfig, p.MuStatic)
	}
	if p.MuDynamic < 0 {
		return fmt.Errorf("%w: mu_dynamic must be non-negative, got %g", ErrInvalidConfig, p.MuDynamic)
	}
	return nil
}

// StaticCapacity is the largest force static friction can hold.
func (p Params) StaticCapacity() float64 {
	return p.MuStatic * p.Mass * p.Gravity
}

// KineticFriction is the magnitude of the sliding friction force.
func (p Params) KineticFriction() float64 {
	return p.MuDynamic * p.Mass * p.Gravity
}

func (p Params) NaturalFrequency() float64 {
	return math.Sqrt(p.Stiffness / p.Mass)
}

// Energy returns the mechanical energy of s.
func (p Params) Energy(s State) float64 {
	return 0.5*p.Mass*s.V*s.V + 0.5*p.Stiffness*s.X*s.X
}

// Config holds the settings of a fixed-step integration run.
type Config struct {
	Dt       float64 `yaml:"dt"`
	Duration float64 `yaml:"duration"`

	// VelocityEpsilon is the |v| threshold below which the block counts as
	// stuck. Zero selects DefaultVelocityEpsilon.
	VelocityEpsilon float64 `yaml:"velocity_epsilon,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Dt:       DefaultDt,
		Duration: DefaultDuration,
	}
}

func (c Config) Validate() error {
	if math.IsNaN(c.Dt) || c.Dt <= 0 || math.IsInf(c.Dt, 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", ErrInvalidConfig, c.Dt)
	}
	if math.IsNaN(c.Duration) || c.Duration <= 0 || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("%w: duration must be positive, got %g", ErrInvalidConfig, c.Duration)
	}
	if steps := c.Duration / c.Dt; math.IsInf(steps, 0) || math.Ceil(steps)+1 > MaxSteps {
		return fmt.Errorf("%w: duration/dt = %g exceeds %d samples", ErrInvalidConfig, steps, MaxSteps)
	}
	if math.IsNaN(c.VelocityEpsilon) || c.VelocityEpsilon < 0 {
		return fmt.Errorf("%w: velocity epsilon must be non-negative, got %g", ErrInvalidConfig, c.VelocityEpsilon)
	}
	return nil
}

// Epsilon returns the effective velocity threshold.
func (c Config) Epsilon() float64 {
	if c.VelocityEpsilon == 0 {
		return DefaultVelocityEpsilon
	}
	return c.VelocityEpsilon
}

// Steps is the number of samples a run produces, including the initial one.
func (c Config) Steps() int {
	return int(math.Ceil(c.Duration/c.Dt)) + 1
}

// State is a point in the (position, velocity) phase plane. When returned by
// a System it holds the time derivative instead.
type State struct {
	X float64
	V float64
}

func (s State) IsValid() bool {
	return !math.IsNaN(s.X) && !math.IsInf(s.X, 0) && !math.IsNaN(s.V) && !math.IsInf(s.V, 0)
}

// Sample is a State stamped with its time.
type Sample struct {
	Time float64
	State
}

// System is a first-order ODE in (x, v).
type System interface {
	Derive(s State) State
}

// Integrator advances a System by one fixed step.
type Integrator interface {
	Step(sys System, s State, dt float64) State
}
