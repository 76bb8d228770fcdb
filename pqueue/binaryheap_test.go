package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/order"
	"github.com/lrleon/alephw/pqueue"
)

func TestBinaryHeapPushPopOrder(t *testing.T) {
	h := pqueue.NewBinaryHeap[int](order.Natural[int]())
	for _, x := range []int{5, 3, 8, 1, 9, 2} {
		h.Push(x)
	}
	var out []int
	for !h.IsEmpty() {
		v, ok := h.Pop()
		require.True(t, ok)
		out = append(out, v)
	}
	assert.Equal(t, []int{1, 2, 3, 5, 8, 9}, out)
}

func TestBinaryHeapPeekDoesNotRemove(t *testing.T) {
	h := pqueue.NewBinaryHeap[int](order.Natural[int]())
	h.Push(10)
	h.Push(4)
	v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 2, h.Len())
}

func TestBinaryHeapEmptyPop(t *testing.T) {
	h := pqueue.NewBinaryHeap[int](order.Natural[int]())
	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestBinaryHeapReserveShrinkToFit(t *testing.T) {
	h := pqueue.NewBinaryHeap[int](order.Natural[int]())
	h.Reserve(100)
	for i := 0; i < 10; i++ {
		h.Push(i)
	}
	h.ShrinkToFit()
	assert.Equal(t, 10, h.Len())
}
