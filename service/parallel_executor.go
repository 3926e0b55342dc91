package service

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelExecutor runs index-addressed tasks with bounded concurrency.
// Callers write results by index, so output ordering is independent of the
// worker count.
type ParallelExecutor struct {
	maxConcurrency int
}

// NewParallelExecutor creates an executor with the given worker bound.
// Zero or negative selects runtime.NumCPU().
func NewParallelExecutor(maxConcurrency int) *ParallelExecutor {
	if maxConcurrency <= 0 {
		maxConcurrency = runtime.NumCPU()
	}
	return &ParallelExecutor{maxConcurrency: maxConcurrency}
}

// ForEach runs fn(0..n-1), at most maxConcurrency at a time, and returns
// the first error. The context cancels remaining tasks.
func (e *ParallelExecutor) ForEach(ctx context.Context, n int, fn func(i int) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.maxConcurrency)

	for i := 0; i < n; i++ {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return fn(i)
		})
	}

	return g.Wait()
}
