package pqueue

import "errors"

var (
	// ErrEmpty is not returned by either queue: Pop and Peek report an
	// empty queue with a false boolean.
	ErrEmpty = errors.New("pqueue: empty")
	// ErrDomain is returned by DecreaseKey when new_key is not <= the
	// current key under the queue's order.
	ErrDomain = errors.New("pqueue: new key is not an improvement")
	// ErrUnknownHandle is returned when a handle does not belong to the
	// queue it was passed to (e.g. already popped, or from another queue).
	ErrUnknownHandle = errors.New("pqueue: unknown handle")
)
