// File: counter/keyed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// KeyedCounter maintains one atomic counter per key inside a sync.Map,
// the concurrent-map analog of guarding each entry with its own lock.

package counter

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// KeyedCounter counts independently per key. Safe for concurrent use.
type KeyedCounter struct {
	cells sync.Map // string -> *atomic.Int64
}

// Add adds delta to the counter for key, creating it on first use.
func (c *KeyedCounter) Add(key string, delta int64) {
	cell, ok := c.cells.Load(key)
	if !ok {
		cell, _ = c.cells.LoadOrStore(key, new(atomic.Int64))
	}
	cell.(*atomic.Int64).Add(delta)
}

// Inc adds one to the counter for key.
func (c *KeyedCounter) Inc(key string) { c.Add(key, 1) }

// Value returns the count for key; zero if the key was never incremented.
func (c *KeyedCounter) Value(key string) int64 {
	cell, ok := c.cells.Load(key)
	if !ok {
		return 0
	}
	return cell.(*atomic.Int64).Load()
}

// Keys returns every key that has been incremented at least once.
func (c *KeyedCounter) Keys() []string {
	var keys []string
	c.cells.Range(func(k, _ any) bool {
		keys = append(keys, k.(string))
		return true
	})
	return keys
}

// Ensure compile-time interface compliance.
var _ api.Counter = (*BoundCounter)(nil)

// BoundCounter adapts a single key of a KeyedCounter to api.Counter.
type BoundCounter struct {
	keyed *KeyedCounter
	key   string
}

// Bind returns an api.Counter view over one key of c.
func (c *KeyedCounter) Bind(key string) *BoundCounter {
	return &BoundCounter{keyed: c, key: key}
}

// Inc adds one to the bound key.
func (b *BoundCounter) Inc() { b.keyed.Inc(b.key) }

// Add adds delta to the bound key.
func (b *BoundCounter) Add(delta int64) { b.keyed.Add(b.key, delta) }

// Value returns the bound key's count.
func (b *BoundCounter) Value() int64 { return b.keyed.Value(b.key) }
