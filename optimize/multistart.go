package optimize

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/utkarsh5026/kinetic/pool"
)

type start struct {
	index int
	x0    []float64
}

// MultiStart runs Descend from several random points on the simplex
// concurrently and returns the solution with the lowest Value together with
// every solution in start order.
//
// Starting points are drawn uniformly from [0, 1)^n and scaled to sum to 1.
// Descents are independent, so the result does not depend on the worker
// count.
func MultiStart(ctx context.Context, funcs []Func, opts ...Option) (Solution, []Solution, error) {
	cfg := newConfig(opts...)
	if len(funcs) == 0 {
		return Solution{}, nil, ErrNoFunctions
	}

	starts := startingPoints(len(funcs), cfg)

	poolOpts := []pool.WorkerPoolOption{pool.WithWorkerCount(cfg.workers)}
	if cfg.rate > 0 {
		poolOpts = append(poolOpts, pool.WithRateLimit(cfg.rate, 1))
	}
	if cfg.pin {
		poolOpts = append(poolOpts, pool.WithCPUAffinity())
	}
	if cfg.progress != nil {
		poolOpts = append(poolOpts, pool.WithOnTaskEnd(func(s start, sol Solution, err error) {
			if err == nil {
				cfg.progress(s.index, sol)
			}
		}))
	}
	wp := pool.NewWorkerPool[start, Solution](poolOpts...)

	cfg.logger.Debug().
		Int("starts", len(starts)).
		Int("workers", wp.Workers()).
		Bool("argmax", cfg.argmax).
		Msg("multi-start descent")

	all, err := wp.Process(ctx, starts, func(ctx context.Context, s start) (Solution, error) {
		if err := ctx.Err(); err != nil {
			return Solution{}, err
		}
		return descend(funcs, s.x0, cfg)
	})
	if err != nil {
		return Solution{}, nil, fmt.Errorf("multi-start: %w", err)
	}

	return best(all), all, nil
}

// startingPoints draws cfg.starts random points normalized onto the simplex.
func startingPoints(n int, cfg *config) []start {
	var rng *rand.Rand
	if cfg.seed != nil {
		rng = rand.New(rand.NewPCG(*cfg.seed, *cfg.seed^0x9e3779b97f4a7c15))
	} else {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	starts := make([]start, cfg.starts)
	for s := range starts {
		x := make([]float64, n)
		var sum float64
		for i := range x {
			x[i] = rng.Float64()
			sum += x[i]
		}
		if sum == 0 {
			// all draws were exactly zero; fall back to the centre
			for i := range x {
				x[i] = 1 / float64(n)
			}
		} else {
			for i := range x {
				x[i] /= sum
			}
		}
		starts[s] = start{index: s, x0: x}
	}
	return starts
}

// best returns the first solution with the lowest Value.
func best(all []Solution) Solution {
	b := all[0]
	for _, s := range all[1:] {
		if s.Value < b.Value {
			b = s
		}
	}
	return b
}
