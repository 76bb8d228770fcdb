// Package dynarray provides DynArray, a growable buffer over a Go slice:
// a logical array with amortized O(1) append and O(1) bounds-checked
// indexed access. It backs the binary-heap priority queue and the
// packed-array graph storage back-end.
//
// Errors:
//
//	ErrOutOfRange - index outside [0, Len()).
package dynarray

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by At/Set/RemoveAtSwap for an index outside
// [0, Len()), and by RemoveLast on an empty array.
var ErrOutOfRange = errors.New("dynarray: index out of range")

// DynArray is a growable, indexable sequence of T.
//
// Zero value is ready to use (an empty array with nil backing storage).
// Not safe for concurrent use; callers needing concurrency should guard
// a DynArray with their own mutex, the way graph.Graph guards its maps.
type DynArray[T any] struct {
	data []T
}

// New creates an empty DynArray with the given initial capacity hint.
// Complexity: O(capacity).
func New[T any](capacity int) *DynArray[T] {
	return &DynArray[T]{data: make([]T, 0, capacity)}
}

// FromSlice wraps an existing slice, taking ownership of it (the caller
// must not mutate s afterward through any other reference).
// Complexity: O(1).
func FromSlice[T any](s []T) *DynArray[T] {
	return &DynArray[T]{data: s}
}

// Len returns the number of logical elements stored.
// Complexity: O(1).
func (d *DynArray[T]) Len() int { return len(d.data) }

// Cap returns the current backing capacity.
// Complexity: O(1).
func (d *DynArray[T]) Cap() int { return cap(d.data) }

// Append adds v at the end of the array, growing the backing slice if
// necessary. Complexity: amortized O(1).
func (d *DynArray[T]) Append(v T) {
	d.data = append(d.data, v)
}

// At returns the element at index i.
// Complexity: O(1).
func (d *DynArray[T]) At(i int) (T, error) {
	var zero T
	if i < 0 || i >= len(d.data) {
		return zero, fmt.Errorf("dynarray: At(%d) len=%d: %w", i, len(d.data), ErrOutOfRange)
	}

	return d.data[i], nil
}

// Set overwrites the element at index i.
// Complexity: O(1).
func (d *DynArray[T]) Set(i int, v T) error {
	if i < 0 || i >= len(d.data) {
		return fmt.Errorf("dynarray: Set(%d) len=%d: %w", i, len(d.data), ErrOutOfRange)
	}
	d.data[i] = v

	return nil
}

// Swap exchanges the elements at indices i and j.
// Complexity: O(1).
func (d *DynArray[T]) Swap(i, j int) {
	d.data[i], d.data[j] = d.data[j], d.data[i]
}

// RemoveLast removes and returns the last element.
// Complexity: O(1).
func (d *DynArray[T]) RemoveLast() (T, error) {
	var zero T
	n := len(d.data)
	if n == 0 {
		return zero, fmt.Errorf("dynarray: RemoveLast on empty array: %w", ErrOutOfRange)
	}
	v := d.data[n-1]
	d.data = d.data[:n-1]

	return v, nil
}

// RemoveAtSwap removes the element at index i by swapping it with the
// last element then truncating — the packed graph back-end's O(1)
// removal strategy. Index stability
// is only guaranteed until the next removal.
// Complexity: O(1).
func (d *DynArray[T]) RemoveAtSwap(i int) (T, error) {
	var zero T
	n := len(d.data)
	if i < 0 || i >= n {
		return zero, fmt.Errorf("dynarray: RemoveAtSwap(%d) len=%d: %w", i, n, ErrOutOfRange)
	}
	v := d.data[i]
	d.data[i] = d.data[n-1]
	d.data = d.data[:n-1]

	return v, nil
}

// Reserve grows the backing capacity to at least n without changing Len.
// Complexity: O(n).
func (d *DynArray[T]) Reserve(n int) {
	if cap(d.data) >= n {
		return
	}
	grown := make([]T, len(d.data), n)
	copy(grown, d.data)
	d.data = grown
}

// ShrinkToFit reallocates the backing slice to exactly Len() capacity.
// Complexity: O(Len()).
func (d *DynArray[T]) ShrinkToFit() {
	if len(d.data) == cap(d.data) {
		return
	}
	shrunk := make([]T, len(d.data))
	copy(shrunk, d.data)
	d.data = shrunk
}

// Slice returns the live backing slice; callers must not retain it past
// the next mutating call, since it aliases the array's storage.
// Complexity: O(1).
func (d *DynArray[T]) Slice() []T { return d.data }
