package scheduler

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Status is an event's execution state within a TimeoutQueue.
type Status int

const (
	// Ready is an event not currently scheduled (never submitted, or has
	// finished a run and may be submitted again).
	Ready Status = iota
	// InQueue is an event waiting in the dispatcher's heap.
	InQueue
	// Executing is an event whose callback is currently running.
	Executing
	// Canceled is an event removed from the queue before it fired.
	Canceled
	// ToDelete is an event whose owner requested cancel-and-delete while
	// it was Executing; the dispatcher finalizes it to Deleted once its
	// callback returns.
	ToDelete
	// Deleted is an event that will never run again.
	Deleted
)

// String renders a Status for logging.
func (s Status) String() string {
	switch s {
	case Ready:
		return "Ready"
	case InQueue:
		return "InQueue"
	case Executing:
		return "Executing"
	case Canceled:
		return "Canceled"
	case ToDelete:
		return "ToDelete"
	case Deleted:
		return "Deleted"
	default:
		return "Unknown"
	}
}

// Event is a closure to run once at a trigger time, owned by its
// submitter: a TimeoutQueue only ever reads and transitions its status,
// never frees it (Go's garbage collector reclaims it once unreferenced).
type Event struct {
	mu          sync.Mutex
	id          uuid.UUID
	triggerTime time.Time
	fn          func()
	status      Status
}

// NewEvent wraps fn as a schedulable Event, initially Ready, with a
// fresh collision-free ID for logging and correlation across
// Schedule/Reschedule calls.
func NewEvent(fn func()) *Event {
	return &Event{id: uuid.New(), fn: fn, status: Ready}
}

// ID returns the event's collision-free identifier, stable for the
// event's lifetime.
func (e *Event) ID() uuid.UUID {
	return e.id
}

// Status reports the event's current execution state.
func (e *Event) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.status
}

// TriggerTime reports the time this event is (or was last) scheduled
// to fire.
func (e *Event) TriggerTime() time.Time {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.triggerTime
}
