package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/analysis"
	"github.com/san-kum/stickslip/internal/sim"
	"github.com/san-kum/stickslip/internal/viz"
)

func runCompare(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	p := cfg.GetParams()
	ic, vel := cfg.GetIntegration()
	if err := requireRelease(vel); err != nil {
		return err
	}

	s := sim.New(nil)
	s.SetLogger(logger)
	result, err := s.Run(p, vel, ic)
	if err != nil {
		return err
	}

	record, err := solveCycles(logger, p, cfg.Cycles.Count)
	if err != nil {
		return err
	}

	report := analysis.CrossCheck(result.Trajectory, p, record, cfg.Cycles.CompareCount, cfg.Cycles.Tolerance)

	fmt.Printf("comparing %d turning points (dt=%g, tolerance=%g)\n\n", cfg.Cycles.CompareCount, ic.Dt, cfg.Cycles.Tolerance)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CYCLE\tTIME\tNUMERICAL\tANALYTIC\tREL_ERR")
	for _, c := range report.Comparisons {
		fmt.Fprintf(w, "%.1f\t%.4f\t%+.6f\t%+.6f\t%.2e\n", c.Cycle, c.Time, c.Numerical, c.Analytic, c.RelErr)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.Row("max rel err", fmt.Sprintf("%.3e", report.MaxRelErr)))
	fmt.Println(viz.Row("result", "") + viz.Verdict(report.OK))

	if !report.OK {
		return fmt.Errorf("cross-check failed: %d of %d turning points compared, max relative error %.3e",
			len(report.Comparisons), cfg.Cycles.CompareCount, report.MaxRelErr)
	}
	return nil
}
