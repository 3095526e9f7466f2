// File: actor/actor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Actor references, handler contract and the per-actor receive loop.

package actor

import (
	"context"
	"sync/atomic"

	"github.com/momentics/hioload-sync/api"
)

// Handler processes one message at a time; it is never invoked
// concurrently for the same actor.
type Handler interface {
	Receive(ctx *Context, msg any)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx *Context, msg any)

// Receive implements Handler.
func (f HandlerFunc) Receive(ctx *Context, msg any) { f(ctx, msg) }

// Context is passed to a handler for each message.
type Context struct {
	self    *Ref
	system  *System
	replyCh chan any
	replied bool
}

// Self returns the reference of the actor processing the message.
func (c *Context) Self() *Ref { return c.self }

// System returns the owning actor system.
func (c *Context) System() *System { return c.system }

// Stop stops the actor after the current message. Remaining mailbox
// messages are discarded.
func (c *Context) Stop() { c.self.stop() }

// Reply answers an Ask. Outside an Ask, or on a second call, the reply
// is dropped.
func (c *Context) Reply(v any) {
	if c.replyCh != nil && !c.replied {
		c.replied = true
		c.replyCh <- v
	}
}

// ask wraps a request/reply message in the mailbox.
type ask struct {
	msg     any
	replyCh chan any
}

// Ref is a handle for sending messages to an actor.
type Ref struct {
	name    string
	system  *System
	handler Handler
	mailbox *mailbox
	stopped atomic.Bool
	done    chan struct{}
}

// Name returns the actor's registered name.
func (r *Ref) Name() string { return r.name }

// Send delivers msg asynchronously. Returns api.ErrActorStopped if the
// actor is no longer running.
func (r *Ref) Send(msg any) error {
	if r.stopped.Load() || !r.mailbox.put(msg) {
		return api.ErrActorStopped
	}
	return nil
}

// Ask delivers msg and waits for the handler's Reply. ctx bounds the
// wait; an actor that stops without replying yields api.ErrActorStopped.
func (r *Ref) Ask(ctx context.Context, msg any) (any, error) {
	replyCh := make(chan any, 1)
	if r.stopped.Load() || !r.mailbox.put(ask{msg: msg, replyCh: replyCh}) {
		return nil, api.ErrActorStopped
	}
	select {
	case v := <-replyCh:
		return v, nil
	case <-r.done:
		// One more chance in case the reply raced the stop.
		select {
		case v := <-replyCh:
			return v, nil
		default:
			return nil, api.ErrActorStopped
		}
	case <-ctx.Done():
		return nil, api.ErrAskTimeout
	}
}

// Pending returns the number of undelivered mailbox messages.
func (r *Ref) Pending() int { return r.mailbox.len() }

// stop makes the actor unreachable and wakes the receive loop.
func (r *Ref) stop() {
	if r.stopped.CompareAndSwap(false, true) {
		r.mailbox.close()
	}
}

// run is the actor's goroutine: take, handle, repeat until stopped.
func (r *Ref) run() {
	defer close(r.done)
	for {
		msg, ok := r.mailbox.take()
		if !ok {
			return
		}
		ctx := &Context{self: r, system: r.system}
		if a, isAsk := msg.(ask); isAsk {
			ctx.replyCh = a.replyCh
			msg = a.msg
		}
		r.handler.Receive(ctx, msg)
	}
}
