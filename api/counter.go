// Package api
// Author: momentics
//
// Shared-counter contract implemented by every counter strategy.

package api

// Counter is an integer counter safe for concurrent use.
type Counter interface {
	// Inc adds one to the counter.
	Inc()
	// Add adds delta to the counter.
	Add(delta int64)
	// Value returns the current count.
	Value() int64
}
