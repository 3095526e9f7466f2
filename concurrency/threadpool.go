// File: concurrency/threadpool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ThreadPool wraps Executor with a minimal submit/close surface.

package concurrency

import "time"

// ThreadPool is a fixed-surface facade over Executor.
type ThreadPool struct {
	executor *Executor
}

// NewThreadPool creates a pool with size workers.
func NewThreadPool(size int, opts ...Option) *ThreadPool {
	return &ThreadPool{
		executor: NewExecutor(size, opts...),
	}
}

// Submit schedules f on the pool.
func (tp *ThreadPool) Submit(f func()) error {
	return tp.executor.Submit(f)
}

// Close shuts the pool down and waits for workers.
func (tp *ThreadPool) Close() {
	tp.executor.Close()
}

// CloseTimeout shuts the pool down, giving up after d.
func (tp *ThreadPool) CloseTimeout(d time.Duration) bool {
	return tp.executor.CloseTimeout(d)
}
