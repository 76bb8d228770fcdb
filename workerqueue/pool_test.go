package workerqueue_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/workerqueue"
)

func TestPoolProcessesAllItemsOnceResumed(t *testing.T) {
	var sum int64
	p, err := workerqueue.NewPool[int](4, 100, func(item int) {
		atomic.AddInt64(&sum, int64(item))
	})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()

	ctx := context.Background()
	for i := 1; i <= 10; i++ {
		require.NoError(t, p.Put(ctx, i))
	}
	p.Resume()

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&sum) == 55
	}, time.Second, 5*time.Millisecond)
}

func TestPoolStartsSuspended(t *testing.T) {
	var ran int32
	p, err := workerqueue.NewPool[int](2, 10, func(int) {
		atomic.AddInt32(&ran, 1)
	})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()

	require.NoError(t, p.Put(context.Background(), 1))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&ran))
	assert.True(t, p.IsSuspended())
}

func TestPoolSuspendPausesConsumption(t *testing.T) {
	var count int32
	p, err := workerqueue.NewPool[int](1, 10, func(int) {
		atomic.AddInt32(&count, 1)
	})
	require.NoError(t, err)
	defer func() { _ = p.Shutdown(context.Background()) }()

	p.Resume()
	require.NoError(t, p.Put(context.Background(), 1))
	require.Eventually(t, func() bool { return atomic.LoadInt32(&count) == 1 }, time.Second, 5*time.Millisecond)

	p.Suspend()
	require.NoError(t, p.Put(context.Background(), 2))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&count))

	p.Resume()
	require.Eventually(t, func() bool { return atomic.LoadInt32(&count) == 2 }, time.Second, 5*time.Millisecond)
}

func TestTryPutFailsWhenQueueFull(t *testing.T) {
	block := make(chan struct{})
	p, err := workerqueue.NewPool[int](1, 1, func(int) {
		<-block
	})
	require.NoError(t, err)
	defer func() {
		close(block)
		_ = p.Shutdown(context.Background())
	}()

	p.Resume()
	require.NoError(t, p.TryPut(1))
	time.Sleep(20 * time.Millisecond) // let the worker pick it up, occupying the one permit

	err = p.TryPut(2)
	assert.ErrorIs(t, err, workerqueue.ErrQueueFull)
}

func TestShutdownStopsAcceptingNewItems(t *testing.T) {
	p, err := workerqueue.NewPool[int](2, 10, func(int) {})
	require.NoError(t, err)
	p.Resume()

	require.NoError(t, p.Shutdown(context.Background()))
	assert.ErrorIs(t, p.TryPut(1), workerqueue.ErrShuttingDown)
}

func TestShutdownWaitsForWorkersToExit(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	started := make(chan struct{})
	p, err := workerqueue.NewPool[int](1, 10, func(int) {
		close(started)
		wg.Wait()
	})
	require.NoError(t, err)

	p.Resume()
	require.NoError(t, p.Put(context.Background(), 1))
	<-started

	done := make(chan error, 1)
	go func() { done <- p.Shutdown(context.Background()) }()

	select {
	case <-done:
		t.Fatal("Shutdown returned before the in-flight worker finished")
	case <-time.After(50 * time.Millisecond):
	}

	wg.Done()
	require.NoError(t, <-done)
}

func TestNewPoolRejectsNonPositiveWorkerCount(t *testing.T) {
	_, err := workerqueue.NewPool[int](0, 10, func(int) {})
	assert.ErrorIs(t, err, workerqueue.ErrInvalidWorkerCount)
}
