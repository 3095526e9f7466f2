package concurrency

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/momentics/hioload-sync/api"
)

func TestExecutor_RunsAllTasks(t *testing.T) {
	e := NewExecutor(4)
	defer e.Close()

	const tasks = 10000
	var sum int64
	var wg sync.WaitGroup

	for i := 1; i <= tasks; i++ {
		i := i
		wg.Add(1)
		submit := func() error {
			return e.Submit(func() {
				defer wg.Done()
				atomic.AddInt64(&sum, int64(i))
			})
		}
		for {
			err := submit()
			if err == nil {
				break
			}
			if !errors.Is(err, api.ErrQueueFull) {
				t.Fatalf("Submit: %v", err)
			}
			time.Sleep(time.Millisecond)
		}
	}
	wg.Wait()

	want := int64(tasks) * (tasks + 1) / 2
	if got := atomic.LoadInt64(&sum); got != want {
		t.Errorf("task sum = %d, want %d", got, want)
	}

	if stats := e.Snapshot(); stats.Submitted != tasks {
		t.Errorf("Submitted = %d, want %d", stats.Submitted, tasks)
	}
	// Executed is bumped after the task body, so poll rather than assert.
	waitFor(t, func() bool { return e.Snapshot().Executed == tasks })
}

func TestExecutor_SubmitAfterClose(t *testing.T) {
	e := NewExecutor(2)
	e.Close()

	err := e.Submit(func() {})
	if !errors.Is(err, api.ErrExecutorClosed) {
		t.Errorf("Submit after Close = %v, want ErrExecutorClosed", err)
	}
}

func TestExecutor_CloseTimeout(t *testing.T) {
	e := NewExecutor(2)
	if !e.CloseTimeout(5 * time.Second) {
		t.Error("CloseTimeout on idle executor should succeed")
	}
}

func TestExecutor_CloseTimeout_BlockedWorker(t *testing.T) {
	e := NewExecutor(1)

	release := make(chan struct{})
	started := make(chan struct{})
	if err := e.Submit(func() { close(started); <-release }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	<-started

	if e.CloseTimeout(50 * time.Millisecond) {
		t.Error("CloseTimeout should report false while a worker is mid-task")
	}

	close(release)
	if !e.CloseTimeout(5 * time.Second) {
		t.Error("CloseTimeout after the task unblocks should succeed")
	}
}

func TestExecutor_ResizeRacesClose(t *testing.T) {
	// Resize and Close from many goroutines at once must never panic
	// and must leave Resize a no-op once the executor is closed.
	for iter := 0; iter < 25; iter++ {
		e := NewExecutor(2)
		stop := make(chan struct{})
		var wg sync.WaitGroup
		for g := 0; g < 8; g++ {
			wg.Add(1)
			go func(g int) {
				defer wg.Done()
				for i := 0; ; i++ {
					select {
					case <-stop:
						return
					default:
					}
					e.Resize(1 + (g+i)%8)
				}
			}(g)
		}
		time.Sleep(50 * time.Microsecond)
		e.Close()
		close(stop)
		wg.Wait()
	}
}

func TestExecutor_ResizeLosesNoTasks(t *testing.T) {
	e := NewExecutor(8)
	defer e.Close()

	var accepted, executed atomic.Int64
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if err := e.Submit(func() { executed.Add(1) }); err == nil {
					accepted.Add(1)
				}
			}
		}()
	}

	for i := 0; i < 40; i++ {
		e.Resize(1)
		e.Resize(8)
	}
	close(stop)
	wg.Wait()

	// Every accepted task must run, including those parked in queues
	// whose worker was retired mid-submission.
	waitFor(t, func() bool { return executed.Load() == accepted.Load() })
}

func TestExecutor_Resize(t *testing.T) {
	e := NewExecutor(2)
	defer e.Close()

	e.Resize(6)
	waitFor(t, func() bool { return e.NumWorkers() == 6 })

	e.Resize(3)
	waitFor(t, func() bool { return e.NumWorkers() == 3 })

	// The shrunken pool still runs tasks.
	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	if err := e.Submit(func() { defer wg.Done(); ran.Store(true) }); err != nil {
		t.Fatalf("Submit after resize: %v", err)
	}
	wg.Wait()
	if !ran.Load() {
		t.Error("task did not run after resize")
	}
}

func TestExecutor_PanicIsolation(t *testing.T) {
	e := NewExecutor(2)
	defer e.Close()

	var wg sync.WaitGroup
	wg.Add(1)
	if err := e.Submit(func() { defer wg.Done(); panic("boom") }); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	wg.Wait()

	// A panicking task must not take its worker down.
	var ok atomic.Bool
	wg.Add(1)
	if err := e.Submit(func() { defer wg.Done(); ok.Store(true) }); err != nil {
		t.Fatalf("Submit after panic: %v", err)
	}
	wg.Wait()
	if !ok.Load() {
		t.Error("worker died after panicking task")
	}

	waitFor(t, func() bool { return e.Snapshot().Panicked == 1 })
}

func TestExecutor_WorkStealing(t *testing.T) {
	e := NewExecutor(4, WithLocalQueueCapacity(2048))
	defer e.Close()

	// Block three workers so the fourth has to steal the backlog.
	release := make(chan struct{})
	var blocked sync.WaitGroup
	for i := 0; i < 3; i++ {
		blocked.Add(1)
		if err := e.Submit(func() { blocked.Done(); <-release }); err != nil {
			t.Fatalf("Submit blocker: %v", err)
		}
	}
	blocked.Wait()

	const tasks = 1000
	var done sync.WaitGroup
	for i := 0; i < tasks; i++ {
		done.Add(1)
		for {
			if err := e.Submit(func() { done.Done() }); err == nil {
				break
			}
			time.Sleep(time.Millisecond)
		}
	}
	done.Wait()
	close(release)

	if stats := e.Snapshot(); stats.Stolen == 0 {
		t.Error("expected the free worker to steal from blocked workers' queues")
	}
}

func TestThreadPool(t *testing.T) {
	tp := NewThreadPool(2)

	var n atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		if err := tp.Submit(func() { defer wg.Done(); n.Add(1) }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	wg.Wait()

	if n.Load() != 100 {
		t.Errorf("ran %d tasks, want 100", n.Load())
	}
	if !tp.CloseTimeout(5 * time.Second) {
		t.Error("CloseTimeout should succeed on a drained pool")
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}
