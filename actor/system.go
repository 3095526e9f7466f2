// File: actor/system.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// System tracks spawned actors and provides group shutdown.

package actor

import (
	"sync"
	"time"
)

// System owns a set of actors and their goroutines.
type System struct {
	mu     sync.Mutex
	actors map[string]*Ref
	wg     sync.WaitGroup
}

// NewSystem creates an empty actor system.
func NewSystem() *System {
	return &System{actors: make(map[string]*Ref)}
}

// Spawn starts an actor with the given name and handler. Spawning a
// duplicate name replaces the registry entry but leaves the previous
// actor running; callers that need uniqueness should Stop the old one.
func (s *System) Spawn(name string, h Handler) *Ref {
	r := &Ref{
		name:    name,
		system:  s,
		handler: h,
		mailbox: newMailbox(),
		done:    make(chan struct{}),
	}
	s.mu.Lock()
	s.actors[name] = r
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		r.run()
	}()
	return r
}

// Lookup returns the registered actor or nil.
func (s *System) Lookup(name string) *Ref {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.actors[name]
}

// Stop stops a single actor and removes it from the registry.
func (s *System) Stop(name string) {
	s.mu.Lock()
	r := s.actors[name]
	delete(s.actors, name)
	s.mu.Unlock()
	if r != nil {
		r.stop()
	}
}

// Shutdown stops every actor and waits for their goroutines.
func (s *System) Shutdown() {
	s.stopAll()
	s.wg.Wait()
}

// ShutdownTimeout stops every actor but gives up waiting after d.
// Returns true if all actor goroutines exited in time.
func (s *System) ShutdownTimeout(d time.Duration) bool {
	s.stopAll()

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.wg.Wait()
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

func (s *System) stopAll() {
	s.mu.Lock()
	refs := make([]*Ref, 0, len(s.actors))
	for _, r := range s.actors {
		refs = append(refs, r)
	}
	s.actors = make(map[string]*Ref)
	s.mu.Unlock()

	for _, r := range refs {
		r.stop()
	}
}
