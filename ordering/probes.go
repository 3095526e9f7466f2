// File: ordering/probes.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Each probe sets up fresh shared flags, races a fixed set of goroutines
// over them, and reports the observed outcome. A start gate ensures the
// goroutines are all running before the race begins.

package ordering

import (
	"sync"
	"sync/atomic"
)

// PairOutcome is the final state of the two flags in the load-buffering probe.
type PairOutcome struct {
	X bool
	Y bool
}

// LoadBufferingProbe races two goroutines over flags x and y:
//
//	g1: a := y; x = a
//	g2: _ = x; y = true
//
// The final pair is (false,true) when g1 reads y before g2 writes it,
// and (true,true) otherwise. No other pair is possible.
func LoadBufferingProbe() PairOutcome {
	var x, y atomic.Bool
	start := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		<-start
		a := y.Load()
		x.Store(a)
	}()
	go func() {
		defer wg.Done()
		<-start
		_ = x.Load()
		y.Store(true)
	}()

	close(start)
	wg.Wait()

	return PairOutcome{X: x.Load(), Y: y.Load()}
}

// IndependentReadsProbe runs two writers that each raise one flag and two
// readers that spin on one flag, then check the other and count it if
// set. The result is 1 when exactly one reader saw both flags, 2 when
// both did. Zero would require the readers to disagree on the write
// order, which sequentially consistent atomics rule out.
func IndependentReadsProbe() int {
	var x, y atomic.Bool
	var z atomic.Int32
	start := make(chan struct{})
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		<-start
		x.Store(true)
	}()
	go func() {
		defer wg.Done()
		<-start
		y.Store(true)
	}()
	go func() {
		defer wg.Done()
		<-start
		for !x.Load() {
		}
		if y.Load() {
			z.Add(1)
		}
	}()
	go func() {
		defer wg.Done()
		<-start
		for !y.Load() {
		}
		if x.Load() {
			z.Add(1)
		}
	}()

	close(start)
	wg.Wait()

	return int(z.Load())
}

// MessagePassingProbe has a writer publish a payload and then raise a
// ready flag, while a reader spin-waits on the flag before loading the
// payload. The store/load pair on the flag establishes a happens-before
// edge, so the reader always observes the payload. Returns the value the
// reader saw.
func MessagePassingProbe(payload int64) int64 {
	var data atomic.Int64
	var ready atomic.Bool
	var got int64
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		data.Store(payload)
		ready.Store(true)
	}()
	go func() {
		defer wg.Done()
		for !ready.Load() {
		}
		got = data.Load()
	}()
	wg.Wait()

	return got
}
