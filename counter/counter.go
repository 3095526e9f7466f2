// File: counter/counter.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Mutex-guarded and atomic counter implementations.

package counter

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var (
	_ api.Counter = (*MutexCounter)(nil)
	_ api.Counter = (*AtomicCounter)(nil)
)

// MutexCounter guards a plain integer with a sync.Mutex.
// The zero value is ready to use.
type MutexCounter struct {
	mu sync.Mutex
	n  int64
}

// Inc adds one to the counter.
func (c *MutexCounter) Inc() { c.Add(1) }

// Add adds delta to the counter.
func (c *MutexCounter) Add(delta int64) {
	c.mu.Lock()
	c.n += delta
	c.mu.Unlock()
}

// Value returns the current count.
func (c *MutexCounter) Value() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

// AtomicCounter is a single atomic word. The zero value is ready to use.
type AtomicCounter struct {
	n atomic.Int64
}

// Inc adds one to the counter.
func (c *AtomicCounter) Inc() { c.n.Add(1) }

// Add adds delta to the counter.
func (c *AtomicCounter) Add(delta int64) { c.n.Add(delta) }

// Value returns the current count.
func (c *AtomicCounter) Value() int64 { return c.n.Load() }
