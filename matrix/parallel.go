// File: matrix/parallel.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Row-parallel multiplication over a worker pool. Each output row is an
// independent task, so no synchronization is needed beyond completion
// tracking.

package matrix

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/momentics/hioload-sync/api"
)

// MultiplyParallel distributes output rows of the product across exec.
// If the pool rejects a row the caller computes it inline, so the result
// is always complete.
func MultiplyParallel(exec api.Executor, a, b []float32, m, n, p int) ([]float32, error) {
	if err := checkDims(a, b, m, n, p); err != nil {
		return nil, err
	}
	result := make([]float32, m*p)

	var wg sync.WaitGroup
	for i := 0; i < m; i++ {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			unrolledRow(a, b, result[i*p:(i+1)*p], i, n, p)
		}
		if err := exec.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	return result, nil
}

// MultiplyChunked splits rows into contiguous chunks, one goroutine per
// chunk, and honors ctx cancellation between rows. workers <= 0 selects
// runtime.NumCPU().
func MultiplyChunked(ctx context.Context, a, b []float32, m, n, p, workers int) ([]float32, error) {
	if err := checkDims(a, b, m, n, p); err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > m {
		workers = m
	}
	result := make([]float32, m*p)

	g, ctx := errgroup.WithContext(ctx)
	chunk := (m + workers - 1) / workers
	for lo := 0; lo < m; lo += chunk {
		lo, hi := lo, lo+chunk
		if hi > m {
			hi = m
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				unrolledRow(a, b, result[i*p:(i+1)*p], i, n, p)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
