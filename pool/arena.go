// Package pool provides fixed-capacity object arenas addressed by generation-tagged handles
package pool

import "fmt"

// Handle identifies a slot and the generation it was acquired in
// A handle held across a Release/Acquire cycle no longer resolves
type Handle struct {
	index      uint32
	generation uint32
}

// Nil is never issued by an arena
var Nil Handle

func (h Handle) Index() int { return int(h.index) }

func (h Handle) IsNil() bool { return h.generation == 0 }

func (h Handle) String() string {
	if h.IsNil() {
		return "Handle(nil)"
	}
	return fmt.Sprintf("Handle(%d:%d)", h.index, h.generation)
}

type slot[T any] struct {
	value      T
	generation uint32
	active     bool
}

// Arena is a fixed pool of T with an active bit per slot
// Not safe for concurrent use
type Arena[T any] struct {
	slots  []slot[T]
	free   []uint32
	active int
}

// NewArena allocates capacity slots up front
func NewArena[T any](capacity int) *Arena[T] {
	a := &Arena[T]{
		slots: make([]slot[T], capacity),
		free:  make([]uint32, 0, capacity),
	}
	a.Reset()
	return a
}

// Acquire activates a free slot with a zeroed value
// Returns false when the arena is full
func (a *Arena[T]) Acquire() (Handle, *T, bool) {
	n := len(a.free)
	if n == 0 {
		return Nil, nil, false
	}
	idx := a.free[n-1]
	a.free = a.free[:n-1]

	s := &a.slots[idx]
	var zero T
	s.value = zero
	s.generation++
	if s.generation == 0 {
		s.generation = 1
	}
	s.active = true
	a.active++
	return Handle{index: idx, generation: s.generation}, &s.value, true
}

// Release deactivates the slot; stale or inactive handles are ignored
// Returns true only for the call that actually released
func (a *Arena[T]) Release(h Handle) bool {
	s := a.lookup(h)
	if s == nil {
		return false
	}
	s.active = false
	a.free = append(a.free, h.index)
	a.active--
	return true
}

// Get resolves an active handle
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	s := a.lookup(h)
	if s == nil {
		return nil, false
	}
	return &s.value, true
}

// Active reports whether h refers to a live slot
func (a *Arena[T]) Active(h Handle) bool {
	return a.lookup(h) != nil
}

// Each visits active slots in index order; fn may Release the visited handle
func (a *Arena[T]) Each(fn func(h Handle, v *T)) {
	for i := range a.slots {
		s := &a.slots[i]
		if !s.active {
			continue
		}
		fn(Handle{index: uint32(i), generation: s.generation}, &s.value)
	}
}

// Handles returns a snapshot of active handles, safe to iterate while releasing
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.active)
	for i := range a.slots {
		if a.slots[i].active {
			out = append(out, Handle{index: uint32(i), generation: a.slots[i].generation})
		}
	}
	return out
}

// Len returns the active count
func (a *Arena[T]) Len() int { return a.active }

// Cap returns the fixed capacity
func (a *Arena[T]) Cap() int { return len(a.slots) }

// Reset releases every slot; outstanding handles become stale
func (a *Arena[T]) Reset() {
	a.free = a.free[:0]
	for i := len(a.slots) - 1; i >= 0; i-- {
		if a.slots[i].active {
			a.slots[i].generation++
		}
		a.slots[i].active = false
		a.free = append(a.free, uint32(i))
	}
	a.active = 0
}

func (a *Arena[T]) lookup(h Handle) *slot[T] {
	if h.IsNil() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.active || s.generation != h.generation {
		return nil
	}
	return s
}
