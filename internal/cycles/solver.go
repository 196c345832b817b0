package cycles

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/logging"
)

// Entry is one half swing. Start and End carry the sign convention of Record.
type Entry struct {
	Cycle float64
	Start float64
	End   float64
}

// Record lists half swings in order. Entry i has Cycle (i+1)/2; entries with
// even index have End negated, odd ones have Start negated, so consecutive
// entries share the turning point between them.
type Record []Entry

// Flatten returns the (cycle, position) series the charts draw: each entry
// contributes its start and then its end at the same cycle value.
func (r Record) Flatten() (cycles, positions []float64) {
	cycles = make([]float64, 0, 2*len(r))
	positions = make([]float64, 0, 2*len(r))
	for _, e := range r {
		cycles = append(cycles, e.Cycle, e.Cycle)
		positions = append(positions, e.Start, e.End)
	}
	return cycles, positions
}

// TurningPoints returns the signed end displacement of every entry.
func (r Record) TurningPoints() []float64 {
	out := make([]float64, len(r))
	for i, e := range r {
		out[i] = e.End
	}
	return out
}

// HalfCycleError reports the half swing at which the sequence stopped.
type HalfCycleError struct {
	Cycle float64
	Seed  float64
	Err   error
}

func (e *HalfCycleError) Error() string {
	return fmt.Sprintf("cycles: half cycle %g from %g: %v", e.Cycle, e.Seed, e.Err)
}

func (e *HalfCycleError) Unwrap() error {
	return e.Err
}

type Solver struct {
	logger *slog.Logger
}

func NewSolver() *Solver {
	return &Solver{logger: logging.Discard()}
}

func (s *Solver) SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.Discard()
	}
	s.logger = l
}

// Solve computes n full cycles with a default Solver.
func Solve(p dynamo.Params, n int) (Record, error) {
	return NewSolver().Solve(p, n)
}

// Solve computes up to 2n half swings starting from p.InitialDisplacement.
// When the block runs out of energy before that, the entries computed so far
// are returned together with a *HalfCycleError wrapping ErrNoTurningPoint.
func (s *Solver) Solve(p dynamo.Params, n int) (Record, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: cycle count must be at least 1, got %d", dynamo.ErrInvalidConfig, n)
	}

	mirror := p.InitialDisplacement < 0
	x := math.Abs(p.InitialDisplacement)
	record := make(Record, 0, 2*n)

	for i := 0; i < 2*n; i++ {
		cycle := float64(i+1) * 0.5

		next, err := HalfSwing(p, x)
		if err != nil {
			s.logger.Debug("cycle sequence stopped",
				"cycle", cycle,
				"seed", x,
				"entries", len(record),
				"reason", err,
			)
			return orient(record, mirror), &HalfCycleError{Cycle: cycle, Seed: x, Err: err}
		}

		s.logger.Log(context.Background(), logging.LevelTrace, "half swing",
			"cycle", cycle,
			"start", x,
			"end", next,
		)

		e := Entry{Cycle: cycle, Start: x, End: next}
		if i%2 == 0 {
			e.End = -e.End
		} else {
			e.Start = -e.Start
		}
		record = append(record, e)
		x = next
	}

	s.logger.Debug("cycle sequence complete", "entries", len(record), "final", x)
	return orient(record, mirror), nil
}

// HalfSwing returns the magnitude of the next turning point for a block
// released from rest at magnitude x0.
func HalfSwing(p dynamo.Params, x0 float64) (float64, error) {
	a, b, c := Coefficients(p, x0)
	r1, r2, err := SolveQuadratic(a, b, c)
	if err != nil {
		return 0, err
	}

	if p.Stiffness*x0 <= p.StaticCapacity() {
		return 0, fmt.Errorf("%w: spring force %g N held by static friction %g N",
			dynamo.ErrNoTurningPoint, p.Stiffness*x0, p.StaticCapacity())
	}
	if 0.5*p.Stiffness*x0*x0 <= p.KineticFriction()*x0 {
		return 0, fmt.Errorf("%w: stored energy %g J cannot reach natural length",
			dynamo.ErrNoTurningPoint, 0.5*p.Stiffness*x0*x0)
	}

	if p.MuDynamic == 0 {
		return x0, nil
	}
	return SelectDecayingRoot(r1, r2, x0)
}

func orient(r Record, mirror bool) Record {
	if !mirror {
		return r
	}
	for i := range r {
		r[i].Start = -r[i].Start
		r[i].End = -r[i].End
	}
	return r
}
