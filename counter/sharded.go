// File: counter/sharded.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ShardedCounter spreads increments over padded cells so concurrent
// writers do not fight over one cache line. Reads sum all cells, so
// Value is linear in the shard count and may race with in-flight adds;
// totals are exact once writers have finished.

package counter

import (
	"math/rand/v2"
	"runtime"
	"sync/atomic"

	"golang.org/x/sys/cpu"

	"github.com/momentics/hioload-sync/api"
)

// Ensure compile-time interface compliance.
var _ api.Counter = (*ShardedCounter)(nil)

// shard keeps each counter word on its own cache line.
type shard struct {
	n atomic.Int64
	_ cpu.CacheLinePad
}

// ShardedCounter is a striped counter with one padded cell per shard.
type ShardedCounter struct {
	shards []shard
}

// NewShardedCounter creates a counter with the given number of shards.
// shards <= 0 selects runtime.NumCPU().
func NewShardedCounter(shards int) *ShardedCounter {
	if shards <= 0 {
		shards = runtime.NumCPU()
	}
	return &ShardedCounter{shards: make([]shard, shards)}
}

// Inc adds one to the counter.
func (c *ShardedCounter) Inc() { c.Add(1) }

// Add adds delta to a randomly selected shard. math/rand/v2 keeps its
// state per thread, so shard selection itself does not contend.
func (c *ShardedCounter) Add(delta int64) {
	c.shards[rand.IntN(len(c.shards))].n.Add(delta)
}

// Value sums all shards.
func (c *ShardedCounter) Value() int64 {
	var total int64
	for i := range c.shards {
		total += c.shards[i].n.Load()
	}
	return total
}
