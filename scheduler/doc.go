// Package scheduler provides TimeoutQueue, a concurrent priority queue
// of timed events dispatched by a single background goroutine: a
// sync.Mutex/sync.Cond pair guards a pqueue.BinaryHeap keyed by trigger
// time, and the dispatcher sleeps until the earliest event is due (or
// is woken early by a new Schedule/Cancel/Reschedule/Shutdown call).
//
// An Event moves through Ready -> InQueue -> Executing -> Ready (one
// full run) or -> Canceled/Deleted (removed before or during a run).
// Cancellation is lazy: a canceled or superseded queue entry is simply
// skipped when the dispatcher reaches it, rather than physically
// removed from the heap.
//
// AI-HINT (file):
//   - Reschedule never removes the old heap entry; it relies on the
//     dispatcher's stale-check (triggerTime/status mismatch) to skip it.
//   - Pass WithLogger to NewTimeoutQueue to trace dispatch decisions;
//     default is silent.
package scheduler
