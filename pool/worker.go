package pool

import (
	"context"
	"fmt"
	"runtime"

	"github.com/utkarsh5026/kinetic/internal/cpu"
)

// worker drains taskChan until it is closed or ctx is cancelled.
// A panicking task is converted into an error so the worker survives it.
func (wp *WorkerPool[T, R]) worker(
	ctx context.Context,
	id int,
	taskChan <-chan indexedTask[T],
	resultChan chan<- Result[R],
	processFn ProcessFunc[T, R],
) error {
	if wp.pinWorkers {
		release := cpu.Pin(id)
		defer release()
	}

	for {
		select {
		case t, ok := <-taskChan:
			if !ok {
				return nil
			}

			if wp.rateLimiter != nil {
				if err := wp.rateLimiter.Wait(ctx); err != nil {
					return err
				}
			}

			if wp.beforeTaskStart != nil {
				wp.beforeTaskStart(t.task)
			}

			result, err := processWithRecovery(ctx, t.task, processFn)
			if wp.onTaskEnd != nil {
				wp.onTaskEnd(t.task, result, err)
			}

			select {
			case resultChan <- Result[R]{Value: result, Error: err, Index: t.index}:
			case <-ctx.Done():
				return ctx.Err()
			}
			if err != nil && !wp.continueOnError {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// processWithRecovery executes a task, converting a panic into an error
// that carries the worker's stack trace.
func processWithRecovery[T, R any](
	ctx context.Context,
	task T,
	processFn ProcessFunc[T, R],
) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("worker panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	return processFn(ctx, task)
}
