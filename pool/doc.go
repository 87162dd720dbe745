// Package pool provides the small generic worker pool that kinetic uses to
// fan independent numeric jobs (optimizer starts, subgraph branches) out
// across CPU cores.
//
// The primary type is WorkerPool[T, R], a configurable pool of workers
// which process tasks of type T and return results of type R. The pool
// supports context-aware processing, panic recovery, rate limiting,
// task hooks and optional CPU pinning via functional options.
//
// # Basic Usage
//
//	ctx := context.Background()
//	starts := [][]float64{{0.2, 0.8}, {0.5, 0.5}}
//	wp := pool.NewWorkerPool[[]float64, float64](pool.WithWorkerCount(4))
//	values, err := wp.Process(ctx, starts, func(ctx context.Context, x []float64) (float64, error) {
//	    return x[0] * x[1], nil
//	})
//
// # Configuration Options
//
//   - WithWorkerCount(n): Set number of concurrent workers (default: GOMAXPROCS)
//   - WithTaskBuffer(n): Set task channel buffer size (default: worker count)
//   - WithRateLimit(tasksPerSecond, burst): Throttle how fast tasks are started
//   - WithContinueOnError(): Keep processing after a task fails
//   - WithBeforeTaskStart(fn), WithOnTaskEnd(fn): Observe task execution
//   - WithCPUAffinity(): Lock each worker to an OS thread pinned to one core
//
// # Error Handling
//
// The pool uses fail-fast semantics by default: when any worker encounters
// an error, processing stops and the error is returned. Panics inside a
// task are converted to errors carrying the stack trace.
package pool
