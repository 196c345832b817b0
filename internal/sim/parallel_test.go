package sim

import (
	"context"
	"errors"
	"testing"

	"github.com/san-kum/stickslip/internal/dynamo"
)

func TestEnsembleRun_PreservesOrder(t *testing.T) {
	p := dynamo.DefaultParams()
	dts := []float64{1e-2, 5e-3, 2e-3, 1e-3}

	jobs := make([]Job, len(dts))
	for i, dt := range dts {
		jobs[i] = Job{Params: p, Config: dynamo.Config{Dt: dt, Duration: 5}}
	}

	results, err := NewEnsemble(nil, 2).Run(context.Background(), jobs)
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}

	if len(results) != len(jobs) {
		t.Fatalf("expected %d results, got %d", len(jobs), len(results))
	}
	for i, res := range results {
		if res.Dt != dts[i] {
			t.Errorf("result %d has dt %v, want %v", i, res.Dt, dts[i])
		}
		if res.Len() != jobs[i].Config.Steps() {
			t.Errorf("result %d has %d samples, want %d", i, res.Len(), jobs[i].Config.Steps())
		}
	}
}

func TestEnsembleRun_MatchesSequential(t *testing.T) {
	p := dynamo.DefaultParams()
	cfg := dynamo.Config{Dt: 1e-3, Duration: 3}
	jobs := []Job{{Params: p, V0: 0, Config: cfg}, {Params: p, V0: 1, Config: cfg}}

	results, err := NewEnsemble(func() *Simulator { return New(nil) }, 0).Run(context.Background(), jobs)
	if err != nil {
		t.Fatal(err)
	}

	for i, job := range jobs {
		want, err := Integrate(job.Params, job.V0, job.Config)
		if err != nil {
			t.Fatal(err)
		}
		if results[i].Final() != want.Final() {
			t.Errorf("job %d: parallel final %+v, sequential %+v", i, results[i].Final(), want.Final())
		}
	}
}

func TestEnsembleRun_Error(t *testing.T) {
	p := dynamo.DefaultParams()
	jobs := []Job{
		{Params: p, Config: dynamo.Config{Dt: 0.01, Duration: 1}},
		{Params: p, Config: dynamo.Config{Dt: 0, Duration: 1}},
	}

	results, err := NewEnsemble(nil, 1).Run(context.Background(), jobs)
	if !errors.Is(err, dynamo.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
	if results != nil {
		t.Error("expected nil results on error")
	}
}

func TestEnsembleRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []Job{{Params: dynamo.DefaultParams(), Config: dynamo.Config{Dt: 0.01, Duration: 1}}}
	_, err := NewEnsemble(nil, 1).Run(ctx, jobs)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
