package schedulers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"schedsim/internal/core"
)

// RunAll simulates batch under every policy concurrently. Each run gets its
// own copy of the batch, results come back in Policies order.
func RunAll(ctx context.Context, batch []*core.Process, opts Options) ([]*ScheduleResult, error) {
	results := make([]*ScheduleResult, len(Policies))
	g, ctx := errgroup.WithContext(ctx)

	for i, policy := range Policies {
		i, policy := i, policy
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Run(policy, batch, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
