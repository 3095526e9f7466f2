// File: ordering/histogram.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Histogram tallies probe outcomes over repeated trials.

package ordering

// Histogram counts how often each outcome occurred across trials.
type Histogram[T comparable] struct {
	counts map[T]int
	trials int
}

// Collect runs probe trials times and tallies each outcome.
func Collect[T comparable](trials int, probe func() T) *Histogram[T] {
	h := &Histogram[T]{counts: make(map[T]int)}
	for i := 0; i < trials; i++ {
		h.counts[probe()]++
		h.trials++
	}
	return h
}

// Count returns how often outcome was observed.
func (h *Histogram[T]) Count(outcome T) int {
	return h.counts[outcome]
}

// Distinct returns the number of different outcomes observed.
func (h *Histogram[T]) Distinct() int {
	return len(h.counts)
}

// Trials returns the total number of trials run.
func (h *Histogram[T]) Trials() int {
	return h.trials
}

// Outcomes returns a copy of the outcome tally.
func (h *Histogram[T]) Outcomes() map[T]int {
	out := make(map[T]int, len(h.counts))
	for k, v := range h.counts {
		out[k] = v
	}
	return out
}
