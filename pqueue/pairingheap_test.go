package pqueue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/order"
	"github.com/lrleon/alephw/pqueue"
)

func TestPairingHeapPushPopOrder(t *testing.T) {
	h := pqueue.NewPairingHeap[int](order.Natural[int]())
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

func TestPairingHeapDecreaseKey(t *testing.T) {
	h := pqueue.NewPairingHeap[int](order.Natural[int]())
	h.Push(10)
	hb := h.Push(20)
	h.Push(15)

	require.NoError(t, h.DecreaseKey(hb, 1))
	v, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPairingHeapDecreaseKeyRejectsIncrease(t *testing.T) {
	h := pqueue.NewPairingHeap[int](order.Natural[int]())
	handle := h.Push(10)
	err := h.DecreaseKey(handle, 20)
	assert.ErrorIs(t, err, pqueue.ErrDomain)
}

func TestPairingHeapMeld(t *testing.T) {
	a := pqueue.NewPairingHeap[int](order.Natural[int]())
	b := pqueue.NewPairingHeap[int](order.Natural[int]())
	a.Push(5)
	a.Push(3)
	b.Push(1)
	b.Push(9)

	require.NoError(t, a.Meld(b))
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, 0, b.Len())

	v, ok := a.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

func TestPairingHeapUnknownHandle(t *testing.T) {
	a := pqueue.NewPairingHeap[int](order.Natural[int]())
	b := pqueue.NewPairingHeap[int](order.Natural[int]())
	h := b.Push(1)
	err := a.DecreaseKey(h, 0)
	assert.ErrorIs(t, err, pqueue.ErrUnknownHandle)
}
