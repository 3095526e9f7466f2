// File: actor/mailbox.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unbounded FIFO mailbox. A mutex/cond pair over an eapache ring queue;
// unbounded so senders never block and actor deadlocks cannot arise from
// mailbox capacity.

package actor

import (
	"sync"

	"github.com/eapache/queue"
)

type mailbox struct {
	mu     sync.Mutex
	ready  *sync.Cond
	q      *queue.Queue
	closed bool
}

func newMailbox() *mailbox {
	mb := &mailbox{q: queue.New()}
	mb.ready = sync.NewCond(&mb.mu)
	return mb
}

// put appends msg; returns false if the mailbox is closed.
func (mb *mailbox) put(msg any) bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.closed {
		return false
	}
	mb.q.Add(msg)
	mb.ready.Signal()
	return true
}

// take blocks until a message is available or the mailbox closes.
// ok is false once the mailbox is closed; queued messages are discarded.
func (mb *mailbox) take() (msg any, ok bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	for mb.q.Length() == 0 && !mb.closed {
		mb.ready.Wait()
	}
	if mb.closed {
		return nil, false
	}
	return mb.q.Remove(), true
}

// close marks the mailbox closed and wakes the consumer.
func (mb *mailbox) close() {
	mb.mu.Lock()
	mb.closed = true
	mb.ready.Broadcast()
	mb.mu.Unlock()
}

func (mb *mailbox) len() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.q.Length()
}
