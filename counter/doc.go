// Package counter
// Author: momentics <momentics@gmail.com>
//
// Shared-counter strategies: mutex-guarded, atomic, cache-line-striped,
// and keyed concurrent-map counters. All implement api.Counter and agree
// on totals under any interleaving; they differ only in how they pay for
// contention.
package counter
