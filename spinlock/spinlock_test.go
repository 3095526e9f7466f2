package spinlock

import (
	"runtime"
	"sync"
	"testing"
)

func TestSpinLock_MutualExclusion(t *testing.T) {
	var lock SpinLock
	var wg sync.WaitGroup

	const goroutines = 16
	const iterations = 10000

	counter := 0
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				lock.Lock()
				counter++
				lock.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*iterations {
		t.Errorf("lost updates: got %d, want %d", counter, goroutines*iterations)
	}
}

func TestSpinLock_TryLock(t *testing.T) {
	var lock SpinLock

	if !lock.TryLock() {
		t.Fatal("TryLock on a free lock should succeed")
	}
	if lock.TryLock() {
		t.Fatal("TryLock on a held lock should fail")
	}
	lock.Unlock()
	if !lock.TryLock() {
		t.Fatal("TryLock after Unlock should succeed")
	}
	lock.Unlock()
}

func TestSpinLock_UnlockUnheldPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Unlock of an unheld lock should panic")
		}
	}()
	var lock SpinLock
	lock.Unlock()
}

func TestSpinLock_HandoffUnderContention(t *testing.T) {
	var lock SpinLock
	var wg sync.WaitGroup

	// One holder, many waiters; every waiter must eventually acquire.
	lock.Lock()
	acquired := make([]bool, 8)
	for i := range acquired {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			lock.Lock()
			acquired[slot] = true
			lock.Unlock()
		}(i)
	}
	runtime.Gosched()
	lock.Unlock()
	wg.Wait()

	for i, ok := range acquired {
		if !ok {
			t.Errorf("waiter %d never acquired the lock", i)
		}
	}
}

func BenchmarkSpinLock_Uncontended(b *testing.B) {
	var lock SpinLock
	for i := 0; i < b.N; i++ {
		lock.Lock()
		lock.Unlock()
	}
}

func BenchmarkSpinLock_Contended(b *testing.B) {
	var lock SpinLock
	counter := 0
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			lock.Lock()
			counter++
			lock.Unlock()
		}
	})
}

func BenchmarkMutex_Contended(b *testing.B) {
	var mu sync.Mutex
	counter := 0
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.Lock()
			counter++
			mu.Unlock()
		}
	})
}
