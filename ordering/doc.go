// Package ordering
// Author: momentics <momentics@gmail.com>
//
// Interleaving probes for classic memory-ordering litmus tests: load
// buffering, independent reads of independent writes, and release/acquire
// message passing. Go's sync/atomic operations are sequentially
// consistent, so outcomes that require hardware-level relaxed ordering
// cannot occur here; the probes expose which results scheduling
// nondeterminism alone can produce, run after run.
package ordering
