package main

import (
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/stickslip/internal/cycles"
	"github.com/san-kum/stickslip/internal/dynamo"
	"github.com/san-kum/stickslip/internal/sim"
)

// measure runs fn once and reports wall time and bytes allocated.
func measure(fn func() error) (time.Duration, uint64, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	return elapsed, after.TotalAlloc - before.TotalAlloc, err
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	p := cfg.GetParams()
	ic, vel := cfg.GetIntegration()

	// Damping ends the analytic sequence early; without friction every
	// requested cycle is computed.
	frictionless := p
	frictionless.MuStatic, frictionless.MuDynamic = 0, 0

	fmt.Println("analytic solver (frictionless, so every cycle is computed)")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CYCLES\tENTRIES\tTIME\tALLOC")
	for _, n := range benchNs {
		var rec cycles.Record
		elapsed, alloc, err := measure(func() error {
			var err error
			rec, err = cycles.Solve(frictionless, n)
			return err
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%d\t%d\t%v\t%s\n", n, len(rec), elapsed, bytesString(alloc))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nintegrator (%.1fs)\n", ic.Duration)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tSTEPS\tTIME\tSTEPS/SEC\tALLOC\tSTREAM_ALLOC")
	for _, step := range benchDts {
		run := ic
		run.Dt = step
		if err := run.Validate(); err != nil {
			return err
		}

		elapsed, alloc, err := measure(func() error {
			_, err := sim.Integrate(p, vel, run)
			return err
		})
		if err != nil {
			return err
		}
		_, streamAlloc, err := measure(func() error {
			return sim.New(nil).Stream(p, vel, run, func(dynamo.Sample) bool { return true })
		})
		if err != nil {
			return err
		}

		steps := run.Steps()
		fmt.Fprintf(w, "%g\t%d\t%v\t%.0f\t%s\t%s\n",
			step, steps, elapsed, float64(steps)/elapsed.Seconds(), bytesString(alloc), bytesString(streamAlloc))
	}
	return w.Flush()
}

func bytesString(b uint64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
