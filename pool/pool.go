package pool

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// WorkerPool is a generic worker pool for CPU-bound batch work.
// It provides concurrent task processing with configurable worker count,
// context support, and proper error handling.
//
// Type parameters:
//   - T: The input task type
//   - R: The result type
type WorkerPool[T any, R any] struct {
	workerCount     int
	taskBuffer      int
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool

	beforeTaskStart func(T)
	onTaskEnd       func(T, R, error)
}

// NewWorkerPool creates a new worker pool with the given options.
//
// Default configuration:
//   - workerCount: runtime.GOMAXPROCS(0) (number of logical CPUs)
//   - taskBuffer: equal to workerCount
//   - continueOnError: false
//
// It panics if a hook registered with WithBeforeTaskStart or WithOnTaskEnd
// was declared for different task or result types.
func NewWorkerPool[T any, R any](opts ...WorkerPoolOption) *WorkerPool[T, R] {
	cfg := &workerPoolConfig{
		workerCount: runtime.GOMAXPROCS(0),
		taskBuffer:  0, // Will be set to workerCount if not specified
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.taskBuffer == 0 {
		cfg.taskBuffer = cfg.workerCount
	}

	var zeroT T
	var zeroR R
	beforeTaskStart, onTaskEnd := checkfuncs[T, R](cfg, fmt.Sprintf("%T", zeroT), fmt.Sprintf("%T", zeroR))

	return &WorkerPool[T, R]{
		workerCount:     cfg.workerCount,
		taskBuffer:      cfg.taskBuffer,
		rateLimiter:     cfg.rateLimiter,
		continueOnError: cfg.continueOnError,
		pinWorkers:      cfg.pinWorkers,
		beforeTaskStart: beforeTaskStart,
		onTaskEnd:       onTaskEnd,
	}
}

// Workers reports the configured number of workers.
func (wp *WorkerPool[T, R]) Workers() int {
	return wp.workerCount
}

// Process executes tasks concurrently using a pool of workers.
// Results are returned in the same order as tasks.
//
// Unless WithContinueOnError is set, the first failing task cancels the
// remaining work and its error is returned together with the partial results.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - tasks: Slice of tasks to process
//   - processFn: Function to process each task
//
// Returns:
//   - results: Slice of all results (may be partial if errors occurred)
//   - error: First error encountered, or all errors joined in continue-on-error mode
func (wp *WorkerPool[T, R]) Process(
	ctx context.Context,
	tasks []T,
	processFn ProcessFunc[T, R],
) ([]R, error) {
	if len(tasks) == 0 {
		return []R{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)

	taskChan := make(chan indexedTask[T], wp.taskBuffer)
	resultChan := make(chan Result[R], len(tasks))

	numWorkers := min(wp.workerCount, len(tasks))
	for id := range numWorkers {
		g.Go(func() error {
			return wp.worker(ctx, id, taskChan, resultChan, processFn)
		})
	}

	g.Go(func() error {
		defer close(taskChan)
		for idx, task := range tasks {
			select {
			case taskChan <- indexedTask[T]{index: idx, task: task}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	results := make([]R, len(tasks))
	var taskErrs []error
	var collectionWg sync.WaitGroup
	collectionWg.Add(1)

	go func() {
		defer collectionWg.Done()
		for result := range resultChan {
			if result.Error != nil {
				taskErrs = append(taskErrs, fmt.Errorf("task %d: %w", result.Index, result.Error))
				continue
			}
			results[result.Index] = result.Value
		}
	}()

	err := g.Wait()
	close(resultChan)
	collectionWg.Wait()

	if err != nil {
		return results, err
	}
	return results, errors.Join(taskErrs...)
}
