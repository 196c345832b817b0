package main

import (
	"fmt"
	"sort"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/analysis"
	"github.com/san-kum/stickslip/internal/metrics"
	"github.com/san-kum/stickslip/internal/physics"
	"github.com/san-kum/stickslip/internal/sim"
	"github.com/san-kum/stickslip/internal/viz"
)

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	p := cfg.GetParams()
	ic, vel := cfg.GetIntegration()

	s := sim.New(nil)
	s.SetLogger(logger)
	for _, m := range metrics.Defaults(p, ic.Epsilon()) {
		s.AddMetric(m)
	}

	logger.Info("running simulation", "steps", ic.Steps(), "dt", ic.Dt, "duration", ic.Duration)
	result, err := s.Run(p, vel, ic)
	if err != nil {
		return err
	}

	final := result.Final()
	osc := physics.NewOscillator(p, ic.Epsilon())

	fmt.Println(viz.TitleStyle.Render("simulation"))
	fmt.Println(viz.Row("steps", fmt.Sprintf("%d", result.Len())))
	fmt.Println(viz.Row("elapsed", result.Elapsed.String()))
	fmt.Println(viz.Row("final x", fmt.Sprintf("%+.6f m", final.X)))
	fmt.Println(viz.Row("final v", fmt.Sprintf("%+.6f m/s", final.V)))
	fmt.Println(viz.Row("regime", osc.Regime(final.State).String()))
	if idx, ok := analysis.DetectRest(result.Trajectory, p, analysis.RestOptions{}); ok {
		fmt.Println(viz.Row("at rest from", fmt.Sprintf("%.4f s", result.Times[idx])))
	}

	fmt.Println("\n" + viz.TitleStyle.Render("metrics"))
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(viz.Row(name, fmt.Sprintf("%.6f", result.Metrics[name])))
	}

	if plot {
		fmt.Println()
		fmt.Println(asciigraph.Plot(result.Positions,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("displacement x(t) [m]"),
		))
	}

	if phase {
		stride := max(result.Len()/4000, 1)
		fmt.Println()
		fmt.Println(viz.Subtle.Render("phase portrait: x across, v up"))
		fmt.Print(analysis.PhasePortrait(result.Trajectory, stride).ASCII(70, 20))
	}

	return nil
}
