package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/physics"
)

const (
	wallX      = 2
	blockHalf  = 4
	springAmp  = 3
	springCoil = 12
)

// Scene draws the block on its spring. Positions are scaled so that
// ±Amplitude fits the canvas with the rest position in the middle.
type Scene struct {
	Params    dynamo.Params
	Epsilon   float64
	Amplitude float64

	canvas *Canvas
}

// NewScene sizes the scene in terminal cells.
func NewScene(p dynamo.Params, eps, amplitude float64, width, height int) *Scene {
	if amplitude <= 0 {
		amplitude = math.Max(math.Abs(p.InitialDisplacement), 1)
	}
	return &Scene{
		Params:    p,
		Epsilon:   eps,
		Amplitude: amplitude,
		canvas:    NewCanvas(width, height),
	}
}

// Forces is the breakdown of the horizontal force on the block.
type Forces struct {
	Spring   float64
	Friction float64
	Net      float64
	Regime   physics.Regime
}

func (s *Scene) Forces(st dynamo.State) Forces {
	f := physics.Friction(s.Params, st.X, st.V, s.Epsilon)
	spring := -s.Params.Stiffness * st.X
	return Forces{
		Spring:   spring,
		Friction: -f,
		Net:      spring - f,
		Regime:   physics.RegimeOf(st.V, s.Epsilon),
	}
}

// BlockX is the dot column of the block centre for displacement x.
func (s *Scene) BlockX(x float64) int {
	dots := s.canvas.Width * 2
	rest := dots / 2
	scale := float64(rest-wallX-2*blockHalf) / s.Amplitude
	return rest + int(math.Round(x*scale))
}

// Draw renders the mechanism at state st.
func (s *Scene) Draw(st dynamo.State) string {
	c := s.canvas
	c.Clear()

	floor := c.Height*4 - 1
	cy := floor - blockHalf - 1

	c.DrawLine(wallX, 0, wallX, floor)
	c.DrawLine(wallX, floor, c.Width*2-1, floor)

	bx := s.BlockX(st.X)
	c.FillRect(bx-blockHalf, cy-blockHalf, bx+blockHalf, cy+blockHalf)

	// Rest position tick on the floor.
	rest := c.Width
	c.DrawLine(rest, floor-2, rest, floor)

	left := bx - blockHalf
	span := float64(left - wallX)
	px, py := wallX, cy
	for i := 1; i < springCoil; i++ {
		x := wallX + int(float64(i)*span/springCoil)
		y := cy - springAmp
		if i%2 == 0 {
			y = cy + springAmp
		}
		c.DrawLine(px, py, x, y)
		px, py = x, y
	}
	c.DrawLine(px, py, left, cy)

	return c.String()
}

// Readout renders the state and forces as labelled lines.
func (s *Scene) Readout(st dynamo.State) string {
	f := s.Forces(st)

	regime := SlidingStyle.Render(f.Regime.String())
	if f.Regime == physics.Stuck {
		regime = StuckStyle.Render(f.Regime.String())
	}

	lines := []string{
		Row("Regime", "") + regime,
		Row("Position", fmt.Sprintf("%+.4f m", st.X)),
		Row("Velocity", fmt.Sprintf("%+.4f m/s", st.V)),
		Row("Spring", fmt.Sprintf("%+.2f N", f.Spring)),
		Row("Friction", fmt.Sprintf("%+.2f N", f.Friction)),
		Row("Net", fmt.Sprintf("%+.2f N", f.Net)),
		Row("Energy", fmt.Sprintf("%.3f J", s.Params.Energy(st))),
	}
	return strings.Join(lines, "\n")
}
