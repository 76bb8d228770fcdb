package pqueue

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lrleon/alephw/order"
)

// Handle identifies a live element of a PairingHeap, stable across
// decrease-key and meld.
type Handle = uuid.UUID

type pairingNode[T any] struct {
	key            T
	handle         Handle
	child, sibling *pairingNode[T]
	parent         *pairingNode[T]
}

// PairingHeap is a meldable, handle-bearing min-priority queue: one
// heap-ordered multiway tree whose root's children are re-paired on Pop,
// the idiomatic Go stand-in for Aleph-w's meldable binary-tree forest
// (no balance invariant to maintain; O(1) push; Meld is linear in the
// absorbed heap's size, see Meld).
//
// Zero value is not usable; construct with NewPairingHeap.
type PairingHeap[T any] struct {
	root  *pairingNode[T]
	less  order.Less[T]
	nodes map[Handle]*pairingNode[T]
	size  int
}

// NewPairingHeap creates an empty PairingHeap ordered by less.
// Complexity: O(1).
func NewPairingHeap[T any](less order.Less[T]) *PairingHeap[T] {
	return &PairingHeap[T]{less: less, nodes: make(map[Handle]*pairingNode[T])}
}

// Len returns the number of elements stored. Complexity: O(1).
func (h *PairingHeap[T]) Len() int { return h.size }

// IsEmpty reports whether the heap holds no elements. Complexity: O(1).
func (h *PairingHeap[T]) IsEmpty() bool { return h.size == 0 }

// Peek returns the minimum element without removing it. Complexity: O(1).
func (h *PairingHeap[T]) Peek() (T, bool) {
	if h.root == nil {
		var zero T

		return zero, false
	}

	return h.root.key, true
}

// Push adds key, returning a handle usable with DecreaseKey.
// Complexity: O(1) amortised.
func (h *PairingHeap[T]) Push(key T) Handle {
	n := &pairingNode[T]{key: key, handle: uuid.New()}
	h.root = h.mergeNodes(h.root, n)
	h.nodes[n.handle] = n
	h.size++

	return n.handle
}

// Pop removes and returns the minimum element. Complexity: O(log n) amortised.
func (h *PairingHeap[T]) Pop() (T, bool) {
	if h.root == nil {
		var zero T

		return zero, false
	}
	min := h.root
	h.root = h.mergePairs(min.child)
	if h.root != nil {
		h.root.parent = nil
	}
	delete(h.nodes, min.handle)
	h.size--

	return min.key, true
}

// DecreaseKey lowers the key at handle to newKey, cutting the node from
// its parent and re-melding it as a new root-level tree.
// Complexity: O(log n) amortised.
func (h *PairingHeap[T]) DecreaseKey(handle Handle, newKey T) error {
	n, ok := h.nodes[handle]
	if !ok {
		return fmt.Errorf("pqueue: PairingHeap.DecreaseKey: %w", ErrUnknownHandle)
	}
	if h.less(n.key, newKey) {
		return fmt.Errorf("pqueue: PairingHeap.DecreaseKey(%v): %w", newKey, ErrDomain)
	}
	n.key = newKey
	if n == h.root {
		return nil
	}
	h.detach(n)
	h.root = h.mergeNodes(h.root, n)

	return nil
}

// Meld absorbs other into h; other becomes empty. The two trees are
// linked in O(1), and every handle of other is moved into h's handle
// index one by one, so Meld costs O(other.Len()).
func (h *PairingHeap[T]) Meld(other *PairingHeap[T]) error {
	if other == nil || other.size == 0 {
		return nil
	}
	h.root = h.mergeNodes(h.root, other.root)
	for handle, n := range other.nodes {
		h.nodes[handle] = n
	}
	h.size += other.size
	other.root, other.size, other.nodes = nil, 0, make(map[Handle]*pairingNode[T])

	return nil
}

// detach removes n from its parent's child list, leaving n a root of its
// own subtree.
func (h *PairingHeap[T]) detach(n *pairingNode[T]) {
	p := n.parent
	if p == nil {
		return
	}
	if p.child == n {
		p.child = n.sibling
	} else {
		c := p.child
		for c.sibling != n {
			c = c.sibling
		}
		c.sibling = n.sibling
	}
	n.sibling = nil
	n.parent = nil
}

// mergeNodes links the smaller-keyed root as the parent of the other,
// the single primitive every other operation is built from.
func (h *PairingHeap[T]) mergeNodes(a, b *pairingNode[T]) *pairingNode[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.less(b.key, a.key) {
		a, b = b, a
	}
	b.sibling = a.child
	b.parent = a
	a.child = b
	a.sibling = nil
	a.parent = nil

	return a
}

// mergePairs implements the classic two-pass left-to-right pairing then
// right-to-left accumulation used to rebuild a single tree out of a
// root's child list after Pop.
func (h *PairingHeap[T]) mergePairs(n *pairingNode[T]) *pairingNode[T] {
	if n == nil || n.sibling == nil {
		if n != nil {
			n.sibling = nil
		}

		return n
	}
	a, b := n, n.sibling
	rest := b.sibling
	a.sibling, b.sibling = nil, nil
	merged := h.mergeNodes(a, b)

	return h.mergeNodes(merged, h.mergePairs(rest))
}
