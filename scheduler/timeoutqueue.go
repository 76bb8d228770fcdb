package scheduler

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lrleon/alephw/pqueue"
)

// queueItem is one heap entry: the triggerTime it carries is snapshotted
// at Schedule/Reschedule time, so a later Reschedule's fresh entry makes
// any earlier, still-queued entry for the same event stale — the
// dispatcher compares this snapshot against the event's live
// triggerTime and silently drops the stale one instead of running it.
type queueItem struct {
	event       *Event
	triggerTime time.Time
}

func lessQueueItem(a, b queueItem) bool { return a.triggerTime.Before(b.triggerTime) }

// TimeoutQueue dispatches Events at their trigger time from a single
// background goroutine. The zero value is not usable; construct with
// NewTimeoutQueue.
type TimeoutQueue struct {
	mu       sync.Mutex
	cond     *sync.Cond
	heap     *pqueue.BinaryHeap[queueItem]
	shutdown bool
	done     chan struct{}
	log      *zap.SugaredLogger
}

// Option configures a TimeoutQueue at construction.
type Option func(*TimeoutQueue)

// WithLogger replaces the default no-op logger, tracing every dispatch
// decision (fired, stale-skipped, shutdown-drained) at Debug level.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(tq *TimeoutQueue) {
		if l != nil {
			tq.log = l
		}
	}
}

// NewTimeoutQueue starts a TimeoutQueue and its dispatcher goroutine.
func NewTimeoutQueue(opts ...Option) *TimeoutQueue {
	tq := &TimeoutQueue{
		heap: pqueue.NewBinaryHeap(lessQueueItem),
		done: make(chan struct{}),
		log:  zap.NewNop().Sugar(),
	}
	tq.cond = sync.NewCond(&tq.mu)
	for _, opt := range opts {
		opt(tq)
	}
	go tq.dispatch()

	return tq
}

// Schedule submits event to fire at triggerTime. event must not already
// be InQueue.
func (tq *TimeoutQueue) Schedule(triggerTime time.Time, event *Event) error {
	if event == nil {
		return ErrNilEvent
	}

	tq.mu.Lock()
	defer tq.mu.Unlock()
	if tq.shutdown {
		return ErrClosed
	}

	event.mu.Lock()
	if event.status == InQueue {
		event.mu.Unlock()

		return fmt.Errorf("scheduler: Schedule: %w", ErrAlreadyQueued)
	}
	event.triggerTime = triggerTime
	event.status = InQueue
	event.mu.Unlock()

	tq.heap.Push(queueItem{event: event, triggerTime: triggerTime})
	tq.cond.Broadcast()

	return nil
}

// Reschedule moves event to a new triggerTime, whether or not it is
// currently queued. The stale queue entry (if any) is abandoned and
// skipped by the dispatcher rather than removed outright.
func (tq *TimeoutQueue) Reschedule(triggerTime time.Time, event *Event) error {
	if event == nil {
		return ErrNilEvent
	}

	tq.mu.Lock()
	defer tq.mu.Unlock()
	if tq.shutdown {
		return ErrClosed
	}

	event.mu.Lock()
	event.triggerTime = triggerTime
	event.status = InQueue
	event.mu.Unlock()

	tq.heap.Push(queueItem{event: event, triggerTime: triggerTime})
	tq.cond.Broadcast()

	return nil
}

// Cancel removes event from the queue before it fires. Reports false if
// event was not InQueue (already fired, already canceled, or never
// scheduled).
func (tq *TimeoutQueue) Cancel(event *Event) bool {
	if event == nil {
		return false
	}

	tq.mu.Lock()
	defer tq.mu.Unlock()

	event.mu.Lock()
	defer event.mu.Unlock()
	if event.status != InQueue {
		return false
	}
	event.status = Canceled
	tq.cond.Broadcast()

	return true
}

// CancelDelete cancels event like Cancel, except an event caught
// Executing is marked ToDelete so the dispatcher finalizes it to
// Deleted once its callback returns, instead of leaving it Executing
// forever.
func (tq *TimeoutQueue) CancelDelete(event *Event) {
	if event == nil {
		return
	}

	tq.mu.Lock()
	defer tq.mu.Unlock()

	event.mu.Lock()
	defer event.mu.Unlock()
	switch event.status {
	case InQueue:
		event.status = Canceled
	case Executing:
		event.status = ToDelete
	default:
		event.status = Deleted
	}
	tq.cond.Broadcast()
}

// Shutdown stops the dispatcher: events still queued are marked
// Canceled and never run. It blocks until the dispatcher goroutine has
// exited or deadline fires; a nil deadline waits without limit.
func (tq *TimeoutQueue) Shutdown(deadline <-chan time.Time) error {
	tq.mu.Lock()
	if tq.shutdown {
		tq.mu.Unlock()

		return nil
	}
	tq.shutdown = true
	tq.cond.Broadcast()
	tq.mu.Unlock()

	if deadline == nil {
		<-tq.done

		return nil
	}
	select {
	case <-tq.done:
		return nil
	case <-deadline:
		return fmt.Errorf("scheduler: Shutdown: deadline exceeded before dispatcher drained")
	}
}

// waitUntil blocks the dispatcher until either cond is signaled or
// deadline arrives, whichever is first. Must be called with tq.mu held;
// it releases the lock while waiting and reacquires it before
// returning, mirroring pthread_cond_timedwait.
func (tq *TimeoutQueue) waitUntil(deadline time.Time) {
	timer := time.AfterFunc(time.Until(deadline), func() {
		tq.mu.Lock()
		tq.cond.Broadcast()
		tq.mu.Unlock()
	})
	defer timer.Stop()
	tq.cond.Wait()
}

func (tq *TimeoutQueue) dispatch() {
	tq.mu.Lock()
	for {
		for tq.heap.IsEmpty() && !tq.shutdown {
			tq.cond.Wait()
		}
		if tq.shutdown {
			break
		}

		top, _ := tq.heap.Peek()
		now := time.Now()
		if top.triggerTime.After(now) {
			tq.waitUntil(top.triggerTime)

			continue
		}

		item, _ := tq.heap.Pop()
		tq.runLocked(item)
	}

	// Shutdown requested: every remaining queued event never fires.
	for !tq.heap.IsEmpty() {
		item, _ := tq.heap.Pop()
		item.event.mu.Lock()
		if item.event.status == InQueue {
			item.event.status = Canceled
		}
		item.event.mu.Unlock()
		tq.log.Debugw("dispatcher drained event on shutdown", "event_id", item.event.ID())
	}
	tq.mu.Unlock()
	close(tq.done)
}

// runLocked executes item's event callback. Called with tq.mu held; it
// releases tq.mu for the callback's duration so Schedule/Cancel calls
// are never blocked by a running event, then reacquires it.
func (tq *TimeoutQueue) runLocked(item queueItem) {
	event := item.event

	event.mu.Lock()
	stale := event.status != InQueue || !event.triggerTime.Equal(item.triggerTime)
	if stale {
		event.mu.Unlock()
		tq.log.Debugw("skipped stale queue entry", "event_id", event.ID())

		return
	}
	event.status = Executing
	fn := event.fn
	event.mu.Unlock()

	tq.log.Debugw("dispatching event", "event_id", event.ID(), "trigger_time", item.triggerTime)
	tq.mu.Unlock()
	runProtected(fn)
	tq.mu.Lock()

	event.mu.Lock()
	if event.status == ToDelete {
		event.status = Deleted
	} else {
		event.status = Ready
	}
	event.mu.Unlock()
}

// runProtected runs fn, recovering a panic so one misbehaving event
// cannot take the dispatcher goroutine down with it.
func runProtected(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
