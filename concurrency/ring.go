// File: concurrency/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RingBuffer is a bounded circular buffer with atomic head/tail, padded
// to prevent false sharing. Safe for one producer and one consumer
// running concurrently; for many-to-many traffic use LockFreeQueue.
// Implements api.Ring.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Ring[any] = (*RingBuffer[any])(nil)

// RingBuffer is a lock-free single-producer/single-consumer ring buffer.
type RingBuffer[T any] struct {
	head uint64 // consumer position
	_    cpu.CacheLinePad
	tail uint64 // producer position
	_    cpu.CacheLinePad
	mask uint64
	data []T
}

// NewRingBuffer allocates a ring buffer; size is rounded up to a power of two.
func NewRingBuffer[T any](size int) *RingBuffer[T] {
	n := uint64(2)
	for n < uint64(size) {
		n <<= 1
	}
	return &RingBuffer[T]{
		mask: n - 1,
		data: make([]T, n),
	}
}

// Enqueue adds an item; returns false if full. Producer side only.
func (r *RingBuffer[T]) Enqueue(item T) bool {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail-head == uint64(len(r.data)) {
		return false
	}
	r.data[tail&r.mask] = item
	// Publish after the slot is written.
	atomic.StoreUint64(&r.tail, tail+1)
	return true
}

// Dequeue removes and returns (item, ok); ok==false if empty. Consumer side only.
func (r *RingBuffer[T]) Dequeue() (item T, ok bool) {
	head := atomic.LoadUint64(&r.head)
	tail := atomic.LoadUint64(&r.tail)
	if head == tail {
		return item, false
	}
	item = r.data[head&r.mask]
	var zero T
	r.data[head&r.mask] = zero
	atomic.StoreUint64(&r.head, head+1)
	return item, true
}

// Len returns number of items in the buffer.
func (r *RingBuffer[T]) Len() int {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns logical buffer capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.data)
}
