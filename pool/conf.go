package pool

import (
	"fmt"

	"golang.org/x/time/rate"
)

// WorkerPoolOption is a functional option for configuring the worker pool.
type WorkerPoolOption func(*workerPoolConfig)

type workerPoolConfig struct {
	workerCount     int
	taskBuffer      int
	rateLimiter     *rate.Limiter
	continueOnError bool
	pinWorkers      bool

	beforeTaskStart     func(any)
	beforeTaskStartType string

	onTaskEnd           func(any, any, error)
	onTaskEndTaskType   string
	onTaskEndResultType string
}

// WithWorkerCount sets the number of concurrent workers.
// If not specified, defaults to runtime.GOMAXPROCS(0).
func WithWorkerCount(count int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if count > 0 {
			cfg.workerCount = count
		}
	}
}

// WithTaskBuffer sets the buffer size for the task channel.
// If not specified, defaults to the number of workers.
func WithTaskBuffer(size int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if size >= 0 {
			cfg.taskBuffer = size
		}
	}
}

// WithRateLimit caps how many tasks are started per second.
// burst specifies how many tasks may start back to back.
//
// Example:
//
//	WithRateLimit(10, 5) // Allow 10 tasks/sec with burst of 5
func WithRateLimit(tasksPerSecond float64, burst int) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if tasksPerSecond > 0 && burst > 0 {
			cfg.rateLimiter = rate.NewLimiter(rate.Limit(tasksPerSecond), burst)
		}
	}
}

// WithContinueOnError keeps the pool running when a task fails. All task
// errors are joined and returned once every task has been attempted.
func WithContinueOnError() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.continueOnError = true
	}
}

// WithCPUAffinity locks every worker goroutine to its own OS thread and pins
// that thread to a core (worker i -> core i mod NumCPU). Platforms without
// affinity support only get the thread lock.
func WithCPUAffinity() WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		cfg.pinWorkers = true
	}
}

// WithBeforeTaskStart registers a hook called by a worker right before it
// processes a task. T must match the pool's task type; NewWorkerPool panics
// otherwise.
func WithBeforeTaskStart[T any](fn func(T)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if fn == nil {
			return
		}
		var zero T
		cfg.beforeTaskStartType = fmt.Sprintf("%T", zero)
		cfg.beforeTaskStart = func(task any) {
			t, _ := task.(T)
			fn(t)
		}
	}
}

// WithOnTaskEnd registers a hook called after each task finishes, with the
// task, its result and its error. T and R must match the pool's types.
func WithOnTaskEnd[T, R any](fn func(T, R, error)) WorkerPoolOption {
	return func(cfg *workerPoolConfig) {
		if fn == nil {
			return
		}
		var zeroT T
		var zeroR R
		cfg.onTaskEndTaskType = fmt.Sprintf("%T", zeroT)
		cfg.onTaskEndResultType = fmt.Sprintf("%T", zeroR)
		cfg.onTaskEnd = func(task, result any, err error) {
			t, _ := task.(T)
			r, _ := result.(R)
			fn(t, r, err)
		}
	}
}
