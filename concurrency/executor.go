// File: concurrency/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor dispatches tasks across worker goroutines, using lock-free
// local queues with work stealing and a global queue fallback. Workers
// confirm termination before removal so dynamic resizing is safe.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-sync/affinity"
	"github.com/momentics/hioload-sync/api"
)

// TaskFunc is a unit of work submitted to the Executor.
type TaskFunc func()

// Ensure compile-time interface compliance.
var _ api.Executor = (*Executor)(nil)

// Stats is a point-in-time snapshot of executor activity.
type Stats struct {
	Submitted  uint64 // tasks accepted by Submit
	Executed   uint64 // tasks run to completion
	Stolen     uint64 // tasks taken from another worker's queue
	Overflowed uint64 // tasks that spilled to the global queue
	Panicked   uint64 // tasks that panicked and were isolated
	Workers    int    // current worker count
}

// poolState is the published view of the queue set. queues only ever
// grows: a shrink retires workers but leaves their queues visible, so a
// submitter holding a stale view can never enqueue into a queue nobody
// will look at again — retired queues stay reachable for stealing and
// are reused by the next grow. active is how many queues currently have
// a dedicated worker; Submit targets only those.
type poolState struct {
	queues []*LockFreeQueue[TaskFunc]
	active int
}

// Executor manages a pool of worker goroutines.
type Executor struct {
	globalQueue   chan TaskFunc
	state         atomic.Value // *poolState
	workers       []*worker
	closeCh       chan struct{}
	closed        atomic.Bool
	resizeRequest chan int
	mu            sync.Mutex
	wg            sync.WaitGroup

	next     atomic.Uint64 // round-robin submit cursor
	localCap int
	pin      bool

	submitted  atomic.Uint64
	executed   atomic.Uint64
	stolen     atomic.Uint64
	overflowed atomic.Uint64
	panicked   atomic.Uint64
}

// Option customizes executor initialization.
type Option func(*Executor)

// WithLocalQueueCapacity overrides the per-worker queue capacity.
func WithLocalQueueCapacity(n int) Option {
	return func(e *Executor) {
		if n > 0 {
			e.localCap = n
		}
	}
}

// WithPinning pins each worker's OS thread to a CPU core.
func WithPinning() Option {
	return func(e *Executor) {
		e.pin = true
	}
}

// NewExecutor creates an Executor with the given number of workers.
// numWorkers <= 0 selects runtime.NumCPU().
func NewExecutor(numWorkers int, opts ...Option) *Executor {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	e := &Executor{
		globalQueue:   make(chan TaskFunc, numWorkers*4),
		closeCh:       make(chan struct{}),
		resizeRequest: make(chan int),
		localCap:      1024,
	}
	for _, opt := range opts {
		opt(e)
	}

	queues := make([]*LockFreeQueue[TaskFunc], numWorkers)
	e.workers = make([]*worker, numWorkers)
	for i := 0; i < numWorkers; i++ {
		queues[i] = NewLockFreeQueue[TaskFunc](e.localCap)
	}
	e.state.Store(&poolState{queues: queues, active: numWorkers})
	for i := 0; i < numWorkers; i++ {
		e.startWorker(i, queues[i])
	}
	go e.manageResizes()
	return e
}

func (e *Executor) startWorker(id int, q *LockFreeQueue[TaskFunc]) {
	w := &worker{
		id:         id,
		executor:   e,
		localQueue: q,
		stopCh:     make(chan struct{}),
		stoppedCh:  make(chan struct{}),
	}
	e.workers[id] = w
	e.wg.Add(1)
	go w.run(&e.wg)
}

// Submit enqueues a task. Returns api.ErrExecutorClosed after Close and
// api.ErrQueueFull when every queue rejects the task.
func (e *Executor) Submit(task func()) error {
	if e.closed.Load() {
		return api.ErrExecutorClosed
	}
	st := e.state.Load().(*poolState)
	idx := int((e.next.Add(1) - 1) % uint64(st.active))
	if st.queues[idx].Enqueue(task) {
		e.submitted.Add(1)
		return nil
	}
	select {
	case e.globalQueue <- task:
		e.submitted.Add(1)
		e.overflowed.Add(1)
		return nil
	case <-e.closeCh:
		return api.ErrExecutorClosed
	default:
		return api.ErrQueueFull
	}
}

// Resize dynamically scales the worker pool. Safe to call concurrently
// with Close; after Close it is a no-op.
func (e *Executor) Resize(newCount int) {
	select {
	case e.resizeRequest <- newCount:
	case <-e.closeCh:
	}
}

// manageResizes adds or removes workers, waiting for removed workers to
// confirm exit before reassigning their queues.
func (e *Executor) manageResizes() {
	for {
		select {
		case <-e.closeCh:
			return
		case newCount := <-e.resizeRequest:
			e.applyResize(newCount)
		}
	}
}

func (e *Executor) applyResize(newCount int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed.Load() {
		return
	}
	if newCount <= 0 {
		newCount = 1
	}
	st := e.state.Load().(*poolState)
	current := len(e.workers)
	switch {
	case newCount > current:
		queues := st.queues
		if len(queues) < newCount {
			grown := make([]*LockFreeQueue[TaskFunc], newCount)
			copy(grown, queues)
			for i := len(queues); i < newCount; i++ {
				grown[i] = NewLockFreeQueue[TaskFunc](e.localCap)
			}
			queues = grown
		}
		e.state.Store(&poolState{queues: queues, active: newCount})
		e.workers = append(e.workers, make([]*worker, newCount-current)...)
		for i := current; i < newCount; i++ {
			e.startWorker(i, queues[i])
		}
	case newCount < current:
		// Publish the shrunken view first so new submissions stop
		// targeting the retiring queues, then stop their workers.
		e.state.Store(&poolState{queues: st.queues, active: newCount})
		for i := newCount; i < current; i++ {
			close(e.workers[i].stopCh)
		}
		for i := newCount; i < current; i++ {
			<-e.workers[i].stoppedCh
		}
		e.workers = e.workers[:newCount]
		// Requeue whatever the retired workers left behind. A submitter
		// still holding the old view may enqueue here afterwards; that
		// is fine, retired queues remain steal targets until the next
		// grow gives them a worker again.
		for i := newCount; i < current; i++ {
			for {
				task, ok := st.queues[i].Dequeue()
				if !ok {
					break
				}
				select {
				case e.globalQueue <- task:
				default:
					e.runDetached(task)
				}
			}
		}
	}
}

// runDetached executes a task on its own goroutine with the same panic
// isolation and accounting as a worker.
func (e *Executor) runDetached(task TaskFunc) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				e.panicked.Add(1)
			}
		}()
		task()
		e.executed.Add(1)
	}()
}

// Close shuts down the executor. Workers finish the task they are
// currently running; tasks still sitting in queues are discarded.
func (e *Executor) Close() {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
		e.mu.Lock()
		for _, w := range e.workers {
			close(w.stopCh)
		}
		e.mu.Unlock()
		e.wg.Wait()
	}
}

// CloseTimeout shuts down the executor like Close, but gives up waiting
// after d. Returns true if every worker exited within the deadline;
// queued tasks are discarded either way.
func (e *Executor) CloseTimeout(d time.Duration) bool {
	if e.closed.CompareAndSwap(false, true) {
		close(e.closeCh)
		e.mu.Lock()
		for _, w := range e.workers {
			close(w.stopCh)
		}
		e.mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.wg.Wait()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

// NumWorkers returns active worker count.
func (e *Executor) NumWorkers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.workers)
}

// Snapshot returns current executor statistics.
func (e *Executor) Snapshot() Stats {
	return Stats{
		Submitted:  e.submitted.Load(),
		Executed:   e.executed.Load(),
		Stolen:     e.stolen.Load(),
		Overflowed: e.overflowed.Load(),
		Panicked:   e.panicked.Load(),
		Workers:    e.NumWorkers(),
	}
}

// worker runs tasks from its local queue, the global queue, and by
// stealing from sibling queues. Signals stoppedCh after full exit so the
// pool can safely remove it from the slice.
type worker struct {
	id         int
	executor   *Executor
	localQueue *LockFreeQueue[TaskFunc]
	stopCh     chan struct{}
	stoppedCh  chan struct{}
}

func (w *worker) run(wg *sync.WaitGroup) {
	defer func() {
		wg.Done()
		close(w.stoppedCh)
	}()
	if w.executor.pin {
		// Best effort; the worker keeps running unpinned on failure.
		_ = affinity.PinCurrentThread(w.id % runtime.NumCPU())
	}
	idle := 0
	for {
		select {
		case <-w.stopCh:
			return
		default:
		}
		if task, ok := w.localQueue.Dequeue(); ok {
			w.safeExecute(task)
			idle = 0
			continue
		}
		select {
		case task := <-w.executor.globalQueue:
			w.safeExecute(task)
			idle = 0
			continue
		case <-w.stopCh:
			return
		default:
		}
		if task, ok := w.steal(); ok {
			w.executor.stolen.Add(1)
			w.safeExecute(task)
			idle = 0
			continue
		}
		idle++
		if idle < 64 {
			runtime.Gosched()
		} else {
			time.Sleep(50 * time.Microsecond)
		}
	}
}

// steal scans sibling queues starting after this worker's own slot.
// Retired queues are scanned too, so nothing parked there is stranded.
func (w *worker) steal() (TaskFunc, bool) {
	st := w.executor.state.Load().(*poolState)
	queues := st.queues
	n := len(queues)
	for i := 1; i < n; i++ {
		victim := queues[(w.id+i)%n]
		if victim == w.localQueue {
			continue
		}
		if task, ok := victim.Dequeue(); ok {
			return task, true
		}
	}
	return nil, false
}

func (w *worker) safeExecute(task TaskFunc) {
	defer func() {
		if r := recover(); r != nil {
			w.executor.panicked.Add(1)
		}
	}()
	task()
	w.executor.executed.Add(1)
}
