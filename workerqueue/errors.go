package workerqueue

import "errors"

// Sentinel errors for workerqueue.
var (
	// ErrShuttingDown is returned by Put/TryPut once Shutdown has begun.
	ErrShuttingDown = errors.New("workerqueue: pool is shutting down")
	// ErrQueueFull is returned by TryPut when the queue is at capacity.
	ErrQueueFull = errors.New("workerqueue: queue is full")
	// ErrInvalidWorkerCount is returned by NewPool for a non-positive
	// worker count.
	ErrInvalidWorkerCount = errors.New("workerqueue: worker count must be positive")
)
