package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/viz"
)

// solveCycles runs the analytic solver and turns a natural stop into a note
// on stderr instead of an error.
func solveCycles(logger *slog.Logger, p dynamo.Params, n int) (cycles.Record, error) {
	solver := cycles.NewSolver()
	solver.SetLogger(logger)

	record, err := solver.Solve(p, n)
	var hce *cycles.HalfCycleError
	if errors.As(err, &hce) && errors.Is(err, dynamo.ErrNoTurningPoint) {
		fmt.Fprintf(os.Stderr, "note: motion stops before half cycle %g (from %.6f m); %d of %d half cycles computed\n",
			hce.Cycle, hce.Seed, len(record), 2*n)
		return record, nil
	}
	return record, err
}

func runCycles(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := cfg.GetParams()

	record, err := solveCycles(newLogger(cfg), p, cfg.Cycles.Count)
	if err != nil {
		return err
	}

	fmt.Println(viz.TitleStyle.Render("analytic turning points"))
	fmt.Println(viz.Row("half period", fmt.Sprintf("%.4f s", cycles.HalfPeriod(p))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CYCLE\tSTART\tEND\tPEAK_SPEED")
	for _, e := range record {
		fmt.Fprintf(w, "%.1f\t%+.6f\t%+.6f\t%.4f\n", e.Cycle, e.Start, e.End, cycles.PeakSpeed(p, abs(e.Start)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if plot && len(record) > 0 {
		_, positions := record.Flatten()
		fmt.Println()
		fmt.Println(asciigraph.Plot(positions,
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("turning points by half cycle [m]"),
		))
	}
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
