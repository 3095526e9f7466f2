// Package api
// Author: momentics
//
// Lock contract extending sync.Locker with a non-blocking acquire.

package api

import "sync"

// TryLocker is a mutual-exclusion lock with a non-blocking acquisition path.
type TryLocker interface {
	sync.Locker

	// TryLock attempts to acquire the lock without blocking.
	TryLock() bool
}
