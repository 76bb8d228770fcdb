package workerqueue

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/lrleon/alephw/list"
)

// WorkerStatus is a worker goroutine's execution state, mirrored per
// worker for introspection.
type WorkerStatus int

const (
	// Ready is a worker currently blocked waiting for an item.
	Ready WorkerStatus = iota
	// Executing is a worker currently running its handler on an item.
	Executing
)

// Handler is the action a Pool's workers perform on each dequeued item.
type Handler[T any] func(item T)

// Pool is a fixed set of worker goroutines draining a shared FIFO of
// items, admission-bounded by a weighted semaphore. The zero value is
// not usable; construct with NewPool.
type Pool[T any] struct {
	mu           sync.Mutex
	cond         *sync.Cond
	queue        list.DList[T]
	sem          *semaphore.Weighted
	handler      Handler[T]
	numWorkers   int
	numActive    int
	suspended    bool
	shuttingDown bool
	workersDone  chan struct{}
	status       []WorkerStatus
	log          *zap.SugaredLogger
}

// Option configures a Pool at construction.
type Option[T any] func(*Pool[T])

// WithLogger replaces the default no-op logger, tracing each worker's
// dequeue/dispatch at Debug level.
func WithLogger[T any](l *zap.SugaredLogger) Option[T] {
	return func(p *Pool[T]) {
		if l != nil {
			p.log = l
		}
	}
}

// NewPool starts numWorkers worker goroutines sharing a FIFO bounded to
// capacity items in flight (queued plus currently executing); calling
// handler on each dequeued item. The pool starts suspended: call Resume
// to begin consumption.
func NewPool[T any](numWorkers int, capacity int64, handler Handler[T], opts ...Option[T]) (*Pool[T], error) {
	if numWorkers <= 0 {
		return nil, ErrInvalidWorkerCount
	}

	p := &Pool[T]{
		sem:         semaphore.NewWeighted(capacity),
		handler:     handler,
		numWorkers:  numWorkers,
		suspended:   true,
		workersDone: make(chan struct{}),
		status:      make([]WorkerStatus, numWorkers),
		log:         zap.NewNop().Sugar(),
	}
	p.cond = sync.NewCond(&p.mu)
	for _, opt := range opts {
		opt(p)
	}

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go p.runWorker(i, &wg)
	}
	go func() {
		wg.Wait()
		close(p.workersDone)
	}()

	return p, nil
}

// Put enqueues item, blocking until the semaphore admits it or ctx is
// done. Returns ErrShuttingDown if Shutdown has begun.
func (p *Pool[T]) Put(ctx context.Context, item T) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	p.mu.Lock()
	if p.shuttingDown {
		p.mu.Unlock()
		p.sem.Release(1)

		return ErrShuttingDown
	}
	p.queue.PushBack(item)
	p.mu.Unlock()
	p.cond.Broadcast()

	return nil
}

// TryPut enqueues item without blocking, failing with ErrQueueFull if
// the pool is already at capacity.
func (p *Pool[T]) TryPut(item T) error {
	if !p.sem.TryAcquire(1) {
		return ErrQueueFull
	}

	p.mu.Lock()
	if p.shuttingDown {
		p.mu.Unlock()
		p.sem.Release(1)

		return ErrShuttingDown
	}
	p.queue.PushBack(item)
	p.mu.Unlock()
	p.cond.Broadcast()

	return nil
}

// Resume allows workers to start (or resume) consuming queued items.
func (p *Pool[T]) Resume() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shuttingDown {
		return
	}
	p.suspended = false
	p.cond.Broadcast()
}

// Suspend pauses consumption without discarding queued items or
// interrupting work already in progress.
func (p *Pool[T]) Suspend() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shuttingDown {
		return
	}
	p.suspended = true
	p.cond.Broadcast()
}

// IsSuspended reports whether the pool is currently paused.
func (p *Pool[T]) IsSuspended() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.suspended
}

// Len reports the number of items currently queued (not counting items
// a worker has already dequeued and is executing).
func (p *Pool[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.queue.Len()
}

// Shutdown stops accepting new items, lets every worker finish its
// current item (queued-but-undequeued items are abandoned), and blocks
// until all worker goroutines have exited or ctx is done.
func (p *Pool[T]) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	p.shuttingDown = true
	p.cond.Broadcast()
	p.mu.Unlock()

	select {
	case <-p.workersDone:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Status reports the execution state of each worker, indexed by
// worker id.
func (p *Pool[T]) Status() []WorkerStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]WorkerStatus, len(p.status))
	copy(out, p.status)

	return out
}

func (p *Pool[T]) runWorker(id int, wg *sync.WaitGroup) {
	defer wg.Done()

	p.mu.Lock()
	for {
		for (p.queue.Len() == 0 || p.suspended) && !p.shuttingDown {
			p.cond.Wait()
		}
		if p.shuttingDown {
			break
		}

		front, ok := p.queue.Front()
		if !ok {
			continue
		}
		item := front.Value()
		p.queue.Remove(front)
		p.numActive++
		p.status[id] = Executing
		p.mu.Unlock()

		p.log.Debugw("worker dispatching item", "worker_id", id)
		runProtected(p.handler, item)
		p.sem.Release(1)

		p.mu.Lock()
		p.numActive--
		p.status[id] = Ready
	}
	p.mu.Unlock()
}

// runProtected runs handler on item, recovering a panic so one
// misbehaving item cannot take a worker goroutine down with it.
func runProtected[T any](handler Handler[T], item T) {
	defer func() { _ = recover() }()
	handler(item)
}
