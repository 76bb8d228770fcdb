package tree

import (
	"fmt"
	"math/rand"
)

// treapNode is a node of a Treap: BST order on key, max-heap order on a
// randomly assigned priority. The heap property is what
// keeps the tree balanced in expectation without any explicit rotation
// bookkeeping beyond insert/remove. size is the rank-augmentation
// count(x).
type treapNode[K, V any] struct {
	key         K
	val         V
	priority    uint64
	left, right *treapNode[K, V]
	size        int
}

func (n *treapNode[K, V]) isNil() bool { return n == nil }
func (n *treapNode[K, V]) Key() K      { return n.key }
func (n *treapNode[K, V]) Value() V    { return n.val }
func (n *treapNode[K, V]) Left() iterNode[K, V] {
	if n == nil || n.left == nil {
		return (*treapNode[K, V])(nil)
	}

	return n.left
}
func (n *treapNode[K, V]) Right() iterNode[K, V] {
	if n == nil || n.right == nil {
		return (*treapNode[K, V])(nil)
	}

	return n.right
}

func treapSize[K, V any](n *treapNode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

func treapTouch[K, V any](n *treapNode[K, V]) {
	n.size = 1 + treapSize(n.left) + treapSize(n.right)
}

func treapRotateRight[K, V any](n *treapNode[K, V]) *treapNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	treapTouch(n)
	treapTouch(l)

	return l
}

func treapRotateLeft[K, V any](n *treapNode[K, V]) *treapNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	treapTouch(n)
	treapTouch(r)

	return r
}

// treapMerge joins two treaps known to satisfy left < right on every
// key, restoring the heap property by always descending into whichever
// side has the higher-priority root. Complexity: O(log n) expected.
func treapMerge[K, V any](l, r *treapNode[K, V]) *treapNode[K, V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		l.right = treapMerge(l.right, r)
		treapTouch(l)

		return l
	}
	r.left = treapMerge(l, r.left)
	treapTouch(r)

	return r
}

// treapSplit partitions n into (L, R) with every key in L < k and every
// key in R >= k. Complexity: O(log n) expected.
func treapSplit[K, V any](n *treapNode[K, V], k K, less func(a, b K) bool) (*treapNode[K, V], *treapNode[K, V]) {
	if n == nil {
		return nil, nil
	}
	if less(n.key, k) {
		l, r := treapSplit(n.right, k, less)
		n.right = l
		treapTouch(n)

		return n, r
	}
	l, r := treapSplit(n.left, k, less)
	n.left = r
	treapTouch(n)

	return l, n
}

// Treap implements KeyedContainer[K, V] as a randomized treap.
//
// Zero value is not usable; construct with NewTreap. Priorities are
// drawn from a caller-supplied *rand.Rand (WithRand) rather than a
// package-level generator, so Treaps built by separate NewTreap calls
// share RNG state only when given the same *rand.Rand; the two halves of
// a split share their parent's generator.
type Treap[K, V any] struct {
	root *treapNode[K, V]
	less func(a, b K) bool
	n    int
	rng  *rand.Rand
}

// TreapOption configures a Treap at construction time.
type TreapOption[K, V any] func(*Treap[K, V])

// WithRand overrides the source of node priorities. Default: a
// rand.New(rand.NewSource(1)) private to the Treap.
func WithRand[K, V any](r *rand.Rand) TreapOption[K, V] {
	return func(t *Treap[K, V]) { t.rng = r }
}

// NewTreap creates an empty Treap ordered by less. Complexity: O(1).
func NewTreap[K, V any](less func(a, b K) bool, opts ...TreapOption[K, V]) *Treap[K, V] {
	t := &Treap[K, V]{less: less, rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Len returns the number of keys stored. Complexity: O(1).
func (t *Treap[K, V]) Len() int { return t.n }

// Search returns the value for k, if present. Complexity: O(log n) expected.
func (t *Treap[K, V]) Search(k K) (V, bool) {
	n := t.root
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			n = n.right
		default:
			return n.val, true
		}
	}
	var zero V

	return zero, false
}

// Insert adds k/v, failing with ErrDuplicate if k is already present.
// Complexity: O(log n) expected.
func (t *Treap[K, V]) Insert(k K, v V) error {
	if _, ok := t.Search(k); ok {
		return fmt.Errorf("tree: Treap.Insert(%v): %w", k, ErrDuplicate)
	}
	t.root = t.treapInsert(t.root, k, v, false)
	t.n++

	return nil
}

// InsertDup adds k/v even if k is already present, landing to the right
// of any equal key. Complexity: O(log n) expected.
func (t *Treap[K, V]) InsertDup(k K, v V) {
	t.root = t.treapInsert(t.root, k, v, true)
	t.n++
}

// SearchOrInsert returns the existing value for k if present, otherwise
// inserts k/v and returns (v, true, nil). Complexity: O(log n) expected.
func (t *Treap[K, V]) SearchOrInsert(k K, v V) (V, bool, error) {
	if existing, ok := t.Search(k); ok {
		return existing, false, nil
	}
	t.root = t.treapInsert(t.root, k, v, false)
	t.n++

	return v, true, nil
}

func (t *Treap[K, V]) treapInsert(n *treapNode[K, V], k K, v V, dup bool) *treapNode[K, V] {
	if n == nil {
		return &treapNode[K, V]{key: k, val: v, priority: t.rng.Uint64(), size: 1}
	}
	switch {
	case t.less(k, n.key):
		n.left = t.treapInsert(n.left, k, v, dup)
		if n.left.priority > n.priority {
			n = treapRotateRight(n)
		}
	case t.less(n.key, k):
		n.right = t.treapInsert(n.right, k, v, dup)
		if n.right.priority > n.priority {
			n = treapRotateLeft(n)
		}
	default:
		if dup {
			n.right = t.treapInsert(n.right, k, v, dup)
			if n.right.priority > n.priority {
				n = treapRotateLeft(n)
			}
		} else {
			n.val = v

			return n
		}
	}
	treapTouch(n)

	return n
}

// Remove deletes k, returning its value and true if present.
// Complexity: O(log n) expected.
func (t *Treap[K, V]) Remove(k K) (V, bool) {
	var removed V
	var found bool
	t.root, removed, found = t.treapRemove(t.root, k)
	if found {
		t.n--
	}

	return removed, found
}

func (t *Treap[K, V]) treapRemove(n *treapNode[K, V], k K) (*treapNode[K, V], V, bool) {
	var zero V
	if n == nil {
		return nil, zero, false
	}
	switch {
	case t.less(k, n.key):
		left, removed, found := t.treapRemove(n.left, k)
		n.left = left
		treapTouch(n)

		return n, removed, found
	case t.less(n.key, k):
		right, removed, found := t.treapRemove(n.right, k)
		n.right = right
		treapTouch(n)

		return n, removed, found
	default:
		removed := n.val
		merged := treapMerge(n.left, n.right)

		return merged, removed, true
	}
}

// Select returns the i-th smallest (key, value) pair, 0-indexed.
// Complexity: O(log n) expected.
func (t *Treap[K, V]) Select(i int) (K, V, error) {
	var zeroK K
	var zeroV V
	if i < 0 || i >= t.n {
		return zeroK, zeroV, fmt.Errorf("tree: Treap.Select(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	n := t.root
	for {
		ls := treapSize(n.left)
		switch {
		case i < ls:
			n = n.left
		case i == ls:
			return n.key, n.val, nil
		default:
			i -= ls + 1
			n = n.right
		}
	}
}

// PositionOf returns i such that Select(i) == k, if k is present.
// Complexity: O(log n) expected.
func (t *Treap[K, V]) PositionOf(k K) (int, bool) {
	n := t.root
	pos := 0
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			pos += treapSize(n.left) + 1
			n = n.right
		default:
			return pos + treapSize(n.left), true
		}
	}

	return 0, false
}

// InOrder returns an ascending-key Iterator. Complexity: O(1) to build.
func (t *Treap[K, V]) InOrder() *Iterator[K, V] {
	if t.root == nil {
		return newIterator[K, V]((*treapNode[K, V])(nil))
	}

	return newIterator[K, V](t.root)
}

// SplitByKey partitions the tree into (L, R) with every key in L < k and
// every key in R >= k; this tree becomes empty.
//
// Complexity: O(log n) expected — true priority-based split, unlike the
// O(n) rebuild used by AVLTree/RBTree (see DESIGN.md).
func (t *Treap[K, V]) SplitByKey(k K) (KeyedContainer[K, V], KeyedContainer[K, V]) {
	l, r := treapSplit(t.root, k, t.less)
	lt := &Treap[K, V]{root: l, less: t.less, rng: t.rng, n: treapSize(l)}
	rt := &Treap[K, V]{root: r, less: t.less, rng: t.rng, n: treapSize(r)}
	t.root, t.n = nil, 0

	return lt, rt
}

// SplitByPosition partitions the tree into (L of size i, R of size n-i);
// this tree becomes empty. Complexity: O(log n) expected.
func (t *Treap[K, V]) SplitByPosition(i int) (KeyedContainer[K, V], KeyedContainer[K, V], error) {
	if i < 0 || i > t.n {
		return nil, nil, fmt.Errorf("tree: Treap.SplitByPosition(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	if i == t.n {
		lt := t
		rt := &Treap[K, V]{less: t.less, rng: t.rng}
		out := &Treap[K, V]{root: lt.root, less: t.less, rng: t.rng, n: lt.n}
		t.root, t.n = nil, 0

		return out, rt, nil
	}
	k, _, _ := t.Select(i)
	l, r := treapSplit(t.root, k, t.less)
	lt := &Treap[K, V]{root: l, less: t.less, rng: t.rng, n: treapSize(l)}
	rt := &Treap[K, V]{root: r, less: t.less, rng: t.rng, n: treapSize(r)}
	t.root, t.n = nil, 0

	return lt, rt, nil
}

// Join merges other into t, requiring every key in other to be greater
// than every key in t; other becomes empty. Complexity: O(log n)
// expected. Fails with ErrDomain if other is not a *Treap[K, V].
func (t *Treap[K, V]) Join(other KeyedContainer[K, V]) error {
	o, err := t.asTreap(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

// JoinExclusive concatenates other into t when max(t) < min(other) (or
// either is empty); other becomes empty. Complexity: O(log n) expected.
// Fails with ErrDomain if other is not a *Treap[K, V].
func (t *Treap[K, V]) JoinExclusive(other KeyedContainer[K, V]) error {
	o, err := t.asTreap(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

func (t *Treap[K, V]) asTreap(other KeyedContainer[K, V]) (*Treap[K, V], error) {
	o, ok := other.(*Treap[K, V])
	if !ok {
		return nil, fmt.Errorf("tree: Treap.Join: %T is not a *Treap: %w", other, ErrDomain)
	}

	return o, nil
}

func (t *Treap[K, V]) joinWith(other *Treap[K, V]) error {
	if other == nil || other.n == 0 {
		return nil
	}
	if t.n > 0 {
		lastKey, _, _ := t.Select(t.n - 1)
		firstKey, _, _ := other.Select(0)
		if !t.less(lastKey, firstKey) {
			return fmt.Errorf("tree: Treap.Join: key ranges overlap: %w", ErrDomain)
		}
	}
	t.root = treapMerge(t.root, other.root)
	t.n += other.n
	other.root, other.n = nil, 0

	return nil
}
