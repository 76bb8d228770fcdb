package pqueue

import (
	"github.com/lrleon/alephw/dynarray"
	"github.com/lrleon/alephw/order"
)

// BinaryHeap is an indexable, array-backed min-heap.
// The order in which equal keys are popped is unspecified (it is not
// insertion order), but it is deterministic for a given sequence of
// Push/Pop calls.
//
// Zero value is not usable; construct with NewBinaryHeap.
type BinaryHeap[T any] struct {
	data *dynarray.DynArray[T]
	less order.Less[T]
}

// NewBinaryHeap creates an empty BinaryHeap ordered by less.
// Complexity: O(1).
func NewBinaryHeap[T any](less order.Less[T]) *BinaryHeap[T] {
	return &BinaryHeap[T]{data: dynarray.New[T](0), less: less}
}

// Len returns the number of elements stored. Complexity: O(1).
func (h *BinaryHeap[T]) Len() int { return h.data.Len() }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *BinaryHeap[T]) IsEmpty() bool { return h.data.Len() == 0 }

// Push adds x, sifting it up to restore the heap invariant.
// Complexity: O(log n).
func (h *BinaryHeap[T]) Push(x T) {
	h.data.Append(x)
	h.siftUp(h.data.Len() - 1)
}

// Peek returns the minimum element without removing it.
// Complexity: O(1).
func (h *BinaryHeap[T]) Peek() (T, bool) {
	if h.data.Len() == 0 {
		var zero T

		return zero, false
	}
	top, _ := h.data.At(0)

	return top, true
}

// Pop removes and returns the minimum element, swapping the root with
// the last element and sifting down. Complexity: O(log n).
func (h *BinaryHeap[T]) Pop() (T, bool) {
	n := h.data.Len()
	if n == 0 {
		var zero T

		return zero, false
	}
	top, _ := h.data.At(0)
	last, _ := h.data.RemoveLast()
	if h.data.Len() > 0 {
		_ = h.data.Set(0, last)
		h.siftDown(0)
	}

	return top, true
}

// Reserve grows the backing storage to at least n without changing Len.
// Complexity: O(n).
func (h *BinaryHeap[T]) Reserve(n int) { h.data.Reserve(n) }

// ShrinkToFit reallocates the backing storage to exactly Len capacity.
// Complexity: O(Len()).
func (h *BinaryHeap[T]) ShrinkToFit() { h.data.ShrinkToFit() }

func (h *BinaryHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		pv, _ := h.data.At(parent)
		iv, _ := h.data.At(i)
		if !h.less(iv, pv) {
			return
		}
		h.data.Swap(i, parent)
		i = parent
	}
}

func (h *BinaryHeap[T]) siftDown(i int) {
	n := h.data.Len()
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		sv, _ := h.data.At(smallest)
		if l < n {
			lv, _ := h.data.At(l)
			if h.less(lv, sv) {
				smallest, sv = l, lv
			}
		}
		if r < n {
			rv, _ := h.data.At(r)
			if h.less(rv, sv) {
				smallest = r
			}
		}
		if smallest == i {
			return
		}
		h.data.Swap(i, smallest)
		i = smallest
	}
}
