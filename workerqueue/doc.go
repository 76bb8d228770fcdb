// Package workerqueue provides Pool, a fixed set of worker goroutines
// draining a shared FIFO queue of items. Admission onto the queue is
// bounded by a weighted semaphore: Put blocks (or, via TryPut, fails
// fast) once the queue is at capacity, instead of growing without
// limit.
//
// A Pool starts suspended: items may be queued but no worker consumes
// them until Resume is called. Suspend pauses consumption without
// discarding queued items, and Shutdown drains in-flight work before
// returning.
//
// AI-HINT (file):
//   - Call Resume before expecting any item to run; a fresh Pool never
//     dispatches on its own.
//   - WithLogger traces per-worker dequeue/dispatch at Debug level.
package workerqueue
