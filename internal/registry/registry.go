// Package registry tracks which native handles are currently live.
//
// The native library hands out opaque handle values and exhibits undefined
// behavior when a destroyed handle is passed back in. Every handle produced by
// a successful create call is recorded here, and every operation validates
// liveness against this set before crossing the native boundary, so
// use-after-destroy fails fast in Go instead of corrupting native state.
package registry

import (
	"fmt"
	"sync"
)

// Set is a thread-safe set of live handle values of a single resource kind.
// One Set exists per kind so that distinct handle spaces never collide. The
// zero value is not usable; construct with New.
type Set[H comparable] struct {
	kind string

	mu   sync.Mutex
	live map[H]struct{}
}

// New returns an empty Set. The kind label names the resource in fault
// messages, e.g. "cublas context".
func New[H comparable](kind string) *Set[H] {
	return &Set[H]{
		kind: kind,
		live: make(map[H]struct{}),
	}
}

// Track records a handle as live. It must be called only with a handle just
// produced by a successful native create call. A duplicate means the native
// library returned a handle value that is already live, which this layer
// cannot recover from; Track panics rather than letting two owners share one
// handle.
func (s *Set[H]) Track(h H) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[h]; ok {
		panic(fmt.Sprintf("registry: %s handle %v tracked twice", s.kind, h))
	}
	s.live[h] = struct{}{}
}

// Untrack removes a handle from the live set and reports whether it was
// present. The check-and-remove is atomic, so two racing destroy attempts on
// the same handle value resolve to exactly one winner.
func (s *Set[H]) Untrack(h H) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[h]; !ok {
		return false
	}
	delete(s.live, h)
	return true
}

// Exists reports whether a handle is currently live.
func (s *Set[H]) Exists(h H) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.live[h]
	return ok
}

// Assert panics unless the handle is live. Call sites use it as a guard
// before handing a handle to the native library; a failure indicates a bug in
// the owning code (use-after-destroy), not an environmental error.
func (s *Set[H]) Assert(h H) {
	if !s.Exists(h) {
		panic(fmt.Sprintf("registry: %s handle %v is not live", s.kind, h))
	}
}

// Len returns the number of live handles. Useful for leak checks in tests.
func (s *Set[H]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}
