package analysis

import (
	"strings"

	"github.com/san-kum/stickslip/internal/dynamo"
)

// Point is one (position, velocity) pair.
type Point struct {
	X, V float64
}

// Portrait is the trajectory projected onto the phase plane.
type Portrait struct {
	Points []Point
}

// PhasePortrait takes every stride-th sample of tr. A stride below one keeps
// every sample.
func PhasePortrait(tr *dynamo.Trajectory, stride int) *Portrait {
	if stride < 1 {
		stride = 1
	}
	portrait := &Portrait{}
	if tr == nil {
		return portrait
	}

	portrait.Points = make([]Point, 0, tr.Len()/stride+1)
	for i := 0; i < tr.Len(); i += stride {
		portrait.Points = append(portrait.Points, Point{X: tr.Positions[i], V: tr.Velocities[i]})
	}
	return portrait
}

// ASCII renders the portrait on a width x height character grid, position
// across and velocity up, with axes where they fall inside the frame.
func (p *Portrait) ASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minV, maxV := p.Points[0].V, p.Points[0].V
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minV, maxV = min(minV, pt.V), max(maxV, pt.V)
	}

	// 10% margin on each side
	minX, maxX = pad(minX, maxX)
	minV, maxV = pad(minV, maxV)
	rangeX := maxX - minX
	rangeV := maxV - minV

	col := func(x float64) int { return int((x - minX) / rangeX * float64(width-1)) }
	row := func(v float64) int { return height - 1 - int((v-minV)/rangeV*float64(height-1)) }

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	for _, pt := range p.Points {
		r, c := row(pt.V), col(pt.X)
		if r >= 0 && r < height && c >= 0 && c < width {
			canvas[r][c] = '•'
		}
	}

	if minX <= 0 && maxX >= 0 {
		c := col(0)
		for r := 0; r < height; r++ {
			if canvas[r][c] == ' ' {
				canvas[r][c] = '│'
			}
		}
	}
	if minV <= 0 && maxV >= 0 {
		r := row(0)
		for c := 0; c < width; c++ {
			if canvas[r][c] == ' ' {
				canvas[r][c] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, line := range canvas {
		sb.WriteString(string(line))
		sb.WriteRune('\n')
	}
	return sb.String()
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	return lo - 0.1*span, hi + 0.1*span
}
