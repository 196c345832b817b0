package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/analysis"
	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/sim"
	"github.com/san-kum/stickslip/internal/viz"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	p := cfg.GetParams()
	ic, vel := cfg.GetIntegration()

	s := sim.New(nil)
	s.SetLogger(logger)
	result, err := s.Run(p, vel, ic)
	if err != nil {
		return err
	}
	tr := result.Trajectory

	n := 1
	for n < tr.Len() {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, tr.Positions)
	ps := analysis.PowerSpectrum(padded)

	// Bins above a few hertz carry nothing for this oscillator.
	maxBin := min(len(ps), int(2.0*float64(n)*tr.Dt)+1)
	if maxBin > 2 {
		fmt.Println(asciigraph.Plot(ps[1:maxBin],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum of x, 0-2 Hz"),
		))
		fmt.Println()
	}

	measured := analysis.DominantFrequency(tr.Positions, tr.Dt)
	predicted := p.NaturalFrequency() / (2 * math.Pi)
	fmt.Println(viz.TitleStyle.Render("frequency"))
	fmt.Println(viz.Row("measured", fmt.Sprintf("%.4f Hz", measured)))
	fmt.Println(viz.Row("natural", fmt.Sprintf("%.4f Hz", predicted)))
	fmt.Println(viz.Row("resolution", fmt.Sprintf("%.4f Hz", 1/(float64(n)*tr.Dt))))

	energy := analysis.EnergySeries(tr, p)
	fmt.Println()
	fmt.Println(viz.TitleStyle.Render("energy"))
	fmt.Println(viz.Row("initial", fmt.Sprintf("%.4f J", energy[0])))
	fmt.Println(viz.Row("final", fmt.Sprintf("%.4f J", energy[len(energy)-1])))
	fmt.Println(viz.Sparkline(energy, 60))

	if idx, ok := analysis.DetectRest(tr, p, analysis.RestOptions{}); ok {
		fmt.Println(viz.Row("at rest from", fmt.Sprintf("%.4f s", tr.Times[idx])))
	} else {
		fmt.Println(viz.Row("at rest from", "still moving"))
	}

	tps := analysis.TurningPoints(tr, p, 0)
	fmt.Println()
	fmt.Println(viz.TitleStyle.Render("turning points"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tTIME\tX\tINTERVAL\tEXPECTED")
	prev := 0.0
	half := cycles.HalfPeriod(p)
	for i, tp := range tps {
		fmt.Fprintf(w, "%d\t%.4f\t%+.6f\t%.4f\t%.4f\n", i+1, tp.Time, tp.X, tp.Time-prev, half)
		prev = tp.Time
	}
	return w.Flush()
}
