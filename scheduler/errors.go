package scheduler

import "errors"

// Sentinel errors for scheduler.
var (
	ErrNilEvent      = errors.New("scheduler: event is nil")
	ErrAlreadyQueued = errors.New("scheduler: event is already in queue")
	ErrClosed        = errors.New("scheduler: queue is shut down")
)
