package scheduler_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/scheduler"
)

func TestEventsFireInTriggerOrder(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	var mu sync.Mutex
	var order []int
	record := func(n int) func() {
		return func() {
			mu.Lock()
			order = append(order, n)
			mu.Unlock()
		}
	}

	now := time.Now()
	var wg sync.WaitGroup
	wg.Add(3)
	wrap := func(n int) func() {
		return func() { record(n)(); wg.Done() }
	}
	require.NoError(t, tq.Schedule(now.Add(60*time.Millisecond), scheduler.NewEvent(wrap(3))))
	require.NoError(t, tq.Schedule(now.Add(20*time.Millisecond), scheduler.NewEvent(wrap(1))))
	require.NoError(t, tq.Schedule(now.Add(40*time.Millisecond), scheduler.NewEvent(wrap(2))))

	waitOrTimeout(t, &wg, 2*time.Second)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestCancelBeforeFirePreventsExecution(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	var ran int32
	ev := scheduler.NewEvent(func() { atomic.AddInt32(&ran, 1) })
	require.NoError(t, tq.Schedule(time.Now().Add(100*time.Millisecond), ev))

	ok := tq.Cancel(ev)
	assert.True(t, ok)
	assert.Equal(t, scheduler.Canceled, ev.Status())

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
}

func TestCancelAfterFireReportsFalse(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	var wg sync.WaitGroup
	wg.Add(1)
	ev := scheduler.NewEvent(func() { wg.Done() })
	require.NoError(t, tq.Schedule(time.Now().Add(10*time.Millisecond), ev))

	waitOrTimeout(t, &wg, time.Second)
	time.Sleep(10 * time.Millisecond)

	assert.False(t, tq.Cancel(ev))
}

func TestRescheduleSupersedesStaleQueueEntry(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	var mu sync.Mutex
	var fired []string
	ev := scheduler.NewEvent(func() {
		mu.Lock()
		fired = append(fired, "ran")
		mu.Unlock()
	})

	require.NoError(t, tq.Schedule(time.Now().Add(500*time.Millisecond), ev))
	require.NoError(t, tq.Reschedule(time.Now().Add(20*time.Millisecond), ev))

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"ran"}, fired, "event should fire exactly once, at the rescheduled time")
}

func TestCancelDeleteDuringExecutionFinalizesToDeleted(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	started := make(chan struct{})
	release := make(chan struct{})
	ev := scheduler.NewEvent(func() {
		close(started)
		<-release
	})
	require.NoError(t, tq.Schedule(time.Now().Add(10*time.Millisecond), ev))

	<-started
	assert.Equal(t, scheduler.Executing, ev.Status())
	tq.CancelDelete(ev)
	assert.Equal(t, scheduler.ToDelete, ev.Status())

	close(release)
	require.Eventually(t, func() bool {
		return ev.Status() == scheduler.Deleted
	}, time.Second, 5*time.Millisecond)
}

func TestShutdownCancelsRemainingQueuedEvents(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()

	ev := scheduler.NewEvent(func() {})
	require.NoError(t, tq.Schedule(time.Now().Add(time.Hour), ev))

	require.NoError(t, tq.Shutdown(nil))
	assert.Equal(t, scheduler.Canceled, ev.Status())

	assert.ErrorIs(t, tq.Schedule(time.Now(), scheduler.NewEvent(func() {})), scheduler.ErrClosed)
}

func TestScheduleRejectsNilEvent(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	assert.ErrorIs(t, tq.Schedule(time.Now(), nil), scheduler.ErrNilEvent)
}

func TestScheduleRejectsAlreadyQueuedEvent(t *testing.T) {
	tq := scheduler.NewTimeoutQueue()
	defer tq.Shutdown(nil)

	ev := scheduler.NewEvent(func() {})
	require.NoError(t, tq.Schedule(time.Now().Add(time.Hour), ev))
	assert.ErrorIs(t, tq.Schedule(time.Now().Add(time.Hour), ev), scheduler.ErrAlreadyQueued)
}

func waitOrTimeout(t *testing.T, wg *sync.WaitGroup, d time.Duration) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatal("timed out waiting for events to fire")
	}
}
