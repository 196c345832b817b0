package sim

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Ensemble runs independent jobs concurrently. Each job gets its own
// Simulator from the factory so metrics never share state.
type Ensemble struct {
	factory func() *Simulator
	limit   int
}

// NewEnsemble creates an ensemble running at most limit jobs at once.
// A limit <= 0 means no limit.
func NewEnsemble(factory func() *Simulator, limit int) *Ensemble {
	if factory == nil {
		factory = func() *Simulator { return New(nil) }
	}
	return &Ensemble{factory: factory, limit: limit}
}

// Run executes all jobs and returns their results in job order. The first
// failing job cancels the jobs that have not started yet.
func (e *Ensemble) Run(ctx context.Context, jobs []Job) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	if e.limit > 0 {
		g.SetLimit(e.limit)
	}

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.factory().Run(job.Params, job.V0, job.Config)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
