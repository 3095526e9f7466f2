package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLockFreeQueue_MPMC(t *testing.T) {
	q := NewLockFreeQueue[int](1024)
	producers := 10
	consumers := 10
	itemsPerProducer := 10000

	var wg sync.WaitGroup
	var sentSum int64
	var receivedSum int64

	// Producers
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(pid int) {
			defer wg.Done()
			for i := 0; i < itemsPerProducer; i++ {
				val := pid*itemsPerProducer + i + 1
				for !q.Enqueue(val) {
					runtime.Gosched()
				}
				atomic.AddInt64(&sentSum, int64(val))
			}
		}(p)
	}

	// Consumers
	var receivedCount int64
	totalItems := int64(producers * itemsPerProducer)

	consumerWg := sync.WaitGroup{}
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				if val, ok := q.Dequeue(); ok {
					atomic.AddInt64(&receivedSum, int64(val))
					if atomic.AddInt64(&receivedCount, 1) == totalItems {
						return
					}
				} else {
					if atomic.LoadInt64(&receivedCount) >= totalItems {
						return
					}
					runtime.Gosched()
				}
			}
		}()
	}

	wg.Wait() // Wait for producers

	done := make(chan struct{})
	go func() {
		consumerWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(5 * time.Second):
		t.Errorf("Timeout waiting for consumers. Received %d/%d", atomic.LoadInt64(&receivedCount), totalItems)
	}
}

func TestLockFreeQueue_FullAndEmpty(t *testing.T) {
	q := NewLockFreeQueue[int](4)

	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue on empty queue should fail")
	}
	for i := 0; i < q.Cap(); i++ {
		if !q.Enqueue(i) {
			t.Fatalf("Enqueue %d on non-full queue failed", i)
		}
	}
	if q.Enqueue(99) {
		t.Error("Enqueue on full queue should fail")
	}
	if q.Len() != q.Cap() {
		t.Errorf("Len() = %d, want %d", q.Len(), q.Cap())
	}

	for i := 0; i < q.Cap(); i++ {
		val, ok := q.Dequeue()
		if !ok || val != i {
			t.Fatalf("Dequeue = (%d, %v), want (%d, true)", val, ok, i)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Error("Dequeue after draining should fail")
	}
}

func TestLockFreeQueue_CapacityRounding(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{0, 2}, {1, 2}, {2, 2}, {3, 4}, {100, 128}, {1024, 1024},
	} {
		q := NewLockFreeQueue[int](tc.in)
		if q.Cap() != tc.want {
			t.Errorf("NewLockFreeQueue(%d).Cap() = %d, want %d", tc.in, q.Cap(), tc.want)
		}
	}
}

func TestRingBuffer_SPSC(t *testing.T) {
	rb := NewRingBuffer[int](1024)
	const total = 100000

	var sentSum, receivedSum int64
	done := make(chan struct{})

	go func() {
		defer close(done)
		received := 0
		for received < total {
			if val, ok := rb.Dequeue(); ok {
				receivedSum += int64(val)
				received++
			} else {
				runtime.Gosched()
			}
		}
	}()

	for i := 1; i <= total; i++ {
		for !rb.Enqueue(i) {
			runtime.Gosched()
		}
		sentSum += int64(i)
	}

	select {
	case <-done:
		if sentSum != receivedSum {
			t.Errorf("Checksum mismatch: sent %d, received %d", sentSum, receivedSum)
		}
	case <-time.After(5 * time.Second):
		t.Error("Timeout waiting for consumer")
	}
}

func TestRingBuffer_FIFO(t *testing.T) {
	rb := NewRingBuffer[string](8)
	inputs := []string{"a", "b", "c", "d"}
	for _, s := range inputs {
		if !rb.Enqueue(s) {
			t.Fatalf("Enqueue(%q) failed", s)
		}
	}
	if rb.Len() != len(inputs) {
		t.Errorf("Len() = %d, want %d", rb.Len(), len(inputs))
	}
	for _, want := range inputs {
		got, ok := rb.Dequeue()
		if !ok || got != want {
			t.Fatalf("Dequeue = (%q, %v), want (%q, true)", got, ok, want)
		}
	}
}
