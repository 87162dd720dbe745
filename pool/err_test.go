package pool

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_ContinueOnError_Process_StopsOnError(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(1))

	var processed atomic.Int32
	tasks := []int{1, 2, 3, 4, 5}
	_, err := pool.Process(context.Background(), tasks, func(ctx context.Context, task int) (int, error) {
		processed.Add(1)
		if task == 2 {
			return 0, errors.New("task 2 failed")
		}
		return task, nil
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if n := processed.Load(); n == int32(len(tasks)) {
		t.Errorf("expected processing to stop early, but all %d tasks ran", n)
	}
}

func TestWorkerPool_ContinueOnError_Process_ContinuesOnError(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(2), WithContinueOnError())

	errOdd := errors.New("odd task")
	tasks := []int{1, 2, 3, 4, 5, 6}
	results, err := pool.Process(context.Background(), tasks, func(ctx context.Context, task int) (int, error) {
		if task%2 == 1 {
			return 0, fmt.Errorf("task %d: %w", task, errOdd)
		}
		return task * 10, nil
	})
	if err == nil {
		t.Fatal("expected joined error, got nil")
	}
	if !errors.Is(err, errOdd) {
		t.Errorf("expected errors.Is(err, errOdd), got %v", err)
	}

	for i, task := range tasks {
		want := 0
		if task%2 == 0 {
			want = task * 10
		}
		if results[i] != want {
			t.Errorf("result %d: expected %d, got %d", i, want, results[i])
		}
	}
}

func TestWorkerPool_ContinueOnError_Process_AllTasksFail(t *testing.T) {
	pool := NewWorkerPool[int, int](WithWorkerCount(3), WithContinueOnError())

	var processed atomic.Int32
	tasks := []int{1, 2, 3, 4}
	_, err := pool.Process(context.Background(), tasks, func(ctx context.Context, task int) (int, error) {
		processed.Add(1)
		return 0, errors.New("always fails")
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if n := processed.Load(); n != int32(len(tasks)) {
		t.Errorf("expected all %d tasks to run, got %d", len(tasks), n)
	}
}
