package event

import (
	"sync"

	"github.com/lixenwraith/star-defense/parameter"
)

// EventQueue buffers sound, explosion, shake and pulse requests raised during
// one Update until the frontend drains them after the frame.
// A full ring overwrites its oldest request and counts it in Dropped.
type EventQueue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]GameEvent
	start   int
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Emit appends a request tagged with the frame that raised it
func (q *EventQueue) Emit(t EventType, payload any, frame int64) {
	q.mu.Lock()
	defer q.mu.Unlock()

	end := (q.start + q.count) & parameter.EventBufferMask
	q.ring[end] = GameEvent{Type: t, Payload: payload, Frame: frame}
	if q.count == parameter.EventQueueSize {
		q.start = (q.start + 1) & parameter.EventBufferMask
		q.dropped++
		return
	}
	q.count++
}

// Consume drains every pending request in emit order, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.count == 0 {
		return nil
	}
	out := make([]GameEvent, q.count)
	for i := range out {
		idx := (q.start + i) & parameter.EventBufferMask
		out[i] = q.ring[idx]
		q.ring[idx] = GameEvent{}
	}
	q.start, q.count = 0, 0
	return out
}

// Len is the number of pending requests
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.count
}

// Dropped is the number of requests overwritten since construction
func (q *EventQueue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
