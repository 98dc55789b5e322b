package sim

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// SweepResult pairs one run's outcome with its statistics.
type SweepResult struct {
	Result
	Summary Summary
}

// RunSweep simulates the same requests once per limit. Runs are independent and
// execute on up to parallelism goroutines; results come back in limits order.
// Each run sees its own copy of requests, so results do not depend on parallelism.
func RunSweep(ctx context.Context, requests []Request, limits []int, base Config, parallelism int) ([]SweepResult, error) {
	if parallelism < 1 {
		panic(fmt.Sprintf("RunSweep: parallelism must be >= 1, got %d", parallelism))
	}
	if base.Admission != nil && len(limits) > 1 {
		return nil, fmt.Errorf("custom admission policy cannot be shared across %d limits", len(limits))
	}
	for _, limit := range limits {
		cfg := base
		cfg.Limit = limit
		if err := cfg.checkSlotLimit(); err != nil {
			return nil, err
		}
	}

	results := make([]SweepResult, len(limits))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, limit := range limits {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("sweep limit %d: %w", limit, err)
			}
			cfg := base
			cfg.Limit = limit
			s := NewSimulator(requests, cfg)
			s.Run()
			res := s.Result()
			results[i] = SweepResult{Result: res, Summary: Aggregate(res.Completed)}
			logrus.Infof("Finished limit=%d: %d completed, %d pending, peak active %d",
				limit, len(res.Completed), len(res.Pending), res.PeakActive)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
