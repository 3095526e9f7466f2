// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across hioload-sync packages.

package api

import "errors"

var (
	// ErrExecutorClosed indicates the executor has been shut down.
	ErrExecutorClosed = errors.New("executor is closed")

	// ErrQueueFull indicates a bounded queue rejected an item.
	ErrQueueFull = errors.New("queue is full")

	// ErrActorStopped indicates a message was sent to a stopped actor.
	ErrActorStopped = errors.New("actor is stopped")

	// ErrAskTimeout indicates a request/reply exchange exceeded its deadline.
	ErrAskTimeout = errors.New("ask timed out")

	// ErrAffinityNotSupported indicates CPU affinity is not supported on this platform.
	ErrAffinityNotSupported = errors.New("CPU affinity not supported")

	// ErrDimensionMismatch indicates incompatible matrix dimensions.
	ErrDimensionMismatch = errors.New("matrix dimension mismatch")
)
