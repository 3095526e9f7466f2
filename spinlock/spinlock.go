// File: spinlock/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLock is a mutual-exclusion lock built from a single atomic word and
// a compare-and-exchange retry loop. Waiters spin with adaptive backoff:
// first yielding the processor, then sleeping once contention persists.
// Suitable for short critical sections; for long ones use sync.Mutex.

package spinlock

import (
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-sync/api"
)

const (
	unlocked uint32 = 0
	locked   uint32 = 1

	// spinYields is how many failed acquisitions are retried with
	// runtime.Gosched before the waiter starts sleeping.
	spinYields = 64
)

// Ensure compile-time interface compliance.
var _ api.TryLocker = (*SpinLock)(nil)

// SpinLock is a CAS-based spin lock. The zero value is an unlocked lock.
// Padding keeps the lock word off shared cache lines.
type SpinLock struct {
	state uint32
	_     cpu.CacheLinePad
}

// TryLock attempts to acquire the lock without blocking.
func (l *SpinLock) TryLock() bool {
	return atomic.CompareAndSwapUint32(&l.state, unlocked, locked)
}

// Lock acquires the lock, spinning until it is available.
func (l *SpinLock) Lock() {
	backoff := 0
	for !atomic.CompareAndSwapUint32(&l.state, unlocked, locked) {
		// Re-check with a plain load before the next CAS attempt to
		// keep the cache line in shared state while the lock is held.
		for atomic.LoadUint32(&l.state) == locked {
			if backoff < spinYields {
				backoff++
				runtime.Gosched()
			} else {
				time.Sleep(time.Microsecond)
			}
		}
	}
}

// Unlock releases the lock. Unlocking an unheld lock panics.
func (l *SpinLock) Unlock() {
	if !atomic.CompareAndSwapUint32(&l.state, locked, unlocked) {
		panic("spinlock: unlock of unlocked lock")
	}
}
