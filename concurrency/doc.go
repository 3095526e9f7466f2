// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Lock-free queues, ring buffers and the worker-pool executor of
// hioload-sync. All primitives are thread-safe; hot fields are padded to
// cache-line boundaries to avoid false sharing between producers and
// consumers.
// See lock_free_queue.go, ring.go, executor.go for implementation details.
package concurrency
