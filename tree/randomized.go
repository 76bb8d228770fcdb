package tree

import (
	"fmt"
	"math/rand"
)

// rndNode is a node of a RandomizedTree (Martinez & Roura): plain BST
// order, balanced not by a deterministic invariant but by inserting at
// the root with probability 1/(size+1), which yields
// expected O(log n) height independent of insertion order. size is the
// rank-augmentation count(x).
type rndNode[K, V any] struct {
	key         K
	val         V
	left, right *rndNode[K, V]
	size        int
}

func (n *rndNode[K, V]) isNil() bool { return n == nil }
func (n *rndNode[K, V]) Key() K      { return n.key }
func (n *rndNode[K, V]) Value() V    { return n.val }
func (n *rndNode[K, V]) Left() iterNode[K, V] {
	if n == nil || n.left == nil {
		return (*rndNode[K, V])(nil)
	}

	return n.left
}
func (n *rndNode[K, V]) Right() iterNode[K, V] {
	if n == nil || n.right == nil {
		return (*rndNode[K, V])(nil)
	}

	return n.right
}

func rndSize[K, V any](n *rndNode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

func rndTouch[K, V any](n *rndNode[K, V]) {
	n.size = 1 + rndSize(n.left) + rndSize(n.right)
}

// rndSplit partitions n into (L, R) with every key in L < k and every
// key in R >= k. Complexity: O(log n) expected.
func rndSplit[K, V any](n *rndNode[K, V], k K, less func(a, b K) bool) (*rndNode[K, V], *rndNode[K, V]) {
	if n == nil {
		return nil, nil
	}
	if less(n.key, k) {
		l, r := rndSplit(n.right, k, less)
		n.right = l
		rndTouch(n)

		return n, r
	}
	l, r := rndSplit(n.left, k, less)
	n.left = r
	rndTouch(n)

	return l, n
}

// rndJoin melds two subtrees known to satisfy left < right on every key,
// picking the new root with probability proportional to each side's
// size so the expected-height guarantee is preserved across merges.
// Complexity: O(log n) expected.
func rndJoin[K, V any](l, r *rndNode[K, V], rng *rand.Rand) *rndNode[K, V] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if rng.Intn(rndSize(l)+rndSize(r)) < rndSize(l) {
		l.right = rndJoin(l.right, r, rng)
		rndTouch(l)

		return l
	}
	r.left = rndJoin(l, r.left, rng)
	rndTouch(r)

	return r
}

// rndInsertAtRoot inserts k/v into n so that the new node ends up as the
// root of the returned subtree, via a key-split of n.
func rndInsertAtRoot[K, V any](n *rndNode[K, V], k K, v V, less func(a, b K) bool) *rndNode[K, V] {
	l, r := rndSplit(n, k, less)
	nn := &rndNode[K, V]{key: k, val: v, left: l, right: r}
	rndTouch(nn)

	return nn
}

// RandomizedTree implements KeyedContainer[K, V] as a randomized binary
// search tree.
//
// Zero value is not usable; construct with NewRandomizedTree. Random
// decisions are drawn from a caller-supplied *rand.Rand (WithRandSource)
// rather than a package-level generator.
type RandomizedTree[K, V any] struct {
	root *rndNode[K, V]
	less func(a, b K) bool
	n    int
	rng  *rand.Rand
}

// RandomizedTreeOption configures a RandomizedTree at construction time.
type RandomizedTreeOption[K, V any] func(*RandomizedTree[K, V])

// WithRandSource overrides the source of randomized insert/join
// decisions. Default: a rand.New(rand.NewSource(1)) private to the tree.
func WithRandSource[K, V any](r *rand.Rand) RandomizedTreeOption[K, V] {
	return func(t *RandomizedTree[K, V]) { t.rng = r }
}

// NewRandomizedTree creates an empty RandomizedTree ordered by less.
// Complexity: O(1).
func NewRandomizedTree[K, V any](less func(a, b K) bool, opts ...RandomizedTreeOption[K, V]) *RandomizedTree[K, V] {
	t := &RandomizedTree[K, V]{less: less, rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Len returns the number of keys stored. Complexity: O(1).
func (t *RandomizedTree[K, V]) Len() int { return t.n }

// Search returns the value for k, if present. Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) Search(k K) (V, bool) {
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
func (t *RandomizedTree[K, V]) Insert(k K, v V) error {
	if _, ok := t.Search(k); ok {
		return fmt.Errorf("tree: RandomizedTree.Insert(%v): %w", k, ErrDuplicate)
	}
	t.root = t.rndInsert(t.root, k, v, false)
	t.n++

	return nil
}

// InsertDup adds k/v even if k is already present, landing to the right
// of any equal key. Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) InsertDup(k K, v V) {
	t.root = t.rndInsert(t.root, k, v, true)
	t.n++
}

// SearchOrInsert returns the existing value for k if present, otherwise
// inserts k/v and returns (v, true, nil). Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) SearchOrInsert(k K, v V) (V, bool, error) {
	if existing, ok := t.Search(k); ok {
		return existing, false, nil
	}
	t.root = t.rndInsert(t.root, k, v, false)
	t.n++

	return v, true, nil
}

func (t *RandomizedTree[K, V]) rndInsert(n *rndNode[K, V], k K, v V, dup bool) *rndNode[K, V] {
	if n == nil {
		return &rndNode[K, V]{key: k, val: v, size: 1}
	}
	// root-insertion probability 1/(size+1)
	if t.rng.Intn(n.size+1) == 0 {
		if dup {
			// split on <= so equal keys stay left of the new node
			return rndInsertAtRoot(n, k, v, func(a, b K) bool { return !t.less(b, a) })
		}

		return rndInsertAtRoot(n, k, v, t.less)
	}
	switch {
	case t.less(k, n.key):
		n.left = t.rndInsert(n.left, k, v, dup)
	case t.less(n.key, k):
		n.right = t.rndInsert(n.right, k, v, dup)
	default:
		if dup {
			n.right = t.rndInsert(n.right, k, v, dup)
		} else {
			n.val = v

			return n
		}
	}
	rndTouch(n)

	return n
}

// Remove deletes k, returning its value and true if present.
// Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) Remove(k K) (V, bool) {
	var removed V
	var found bool
	t.root, removed, found = t.rndRemove(t.root, k)
	if found {
		t.n--
	}

	return removed, found
}

func (t *RandomizedTree[K, V]) rndRemove(n *rndNode[K, V], k K) (*rndNode[K, V], V, bool) {
	var zero V
	if n == nil {
		return nil, zero, false
	}
	switch {
	case t.less(k, n.key):
		left, removed, found := t.rndRemove(n.left, k)
		n.left = left
		rndTouch(n)

		return n, removed, found
	case t.less(n.key, k):
		right, removed, found := t.rndRemove(n.right, k)
		n.right = right
		rndTouch(n)

		return n, removed, found
	default:
		removed := n.val
		merged := rndJoin(n.left, n.right, t.rng)

		return merged, removed, true
	}
}

// Select returns the i-th smallest (key, value) pair, 0-indexed.
// Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) Select(i int) (K, V, error) {
	var zeroK K
	var zeroV V
	if i < 0 || i >= t.n {
		return zeroK, zeroV, fmt.Errorf("tree: RandomizedTree.Select(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	n := t.root
	for {
		ls := rndSize(n.left)
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
func (t *RandomizedTree[K, V]) PositionOf(k K) (int, bool) {
	n := t.root
	pos := 0
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			pos += rndSize(n.left) + 1
			n = n.right
		default:
			return pos + rndSize(n.left), true
		}
	}

	return 0, false
}

// InOrder returns an ascending-key Iterator. Complexity: O(1) to build.
func (t *RandomizedTree[K, V]) InOrder() *Iterator[K, V] {
	if t.root == nil {
		return newIterator[K, V]((*rndNode[K, V])(nil))
	}

	return newIterator[K, V](t.root)
}

// SplitByKey partitions the tree into (L, R) with every key in L < k and
// every key in R >= k; this tree becomes empty.
//
// Complexity: O(log n) expected — true key-based split, like Treap and
// unlike the O(n) rebuild used by AVLTree/RBTree (DESIGN.md).
func (t *RandomizedTree[K, V]) SplitByKey(k K) (KeyedContainer[K, V], KeyedContainer[K, V]) {
	l, r := rndSplit(t.root, k, t.less)
	lt := &RandomizedTree[K, V]{root: l, less: t.less, rng: t.rng, n: rndSize(l)}
	rt := &RandomizedTree[K, V]{root: r, less: t.less, rng: t.rng, n: rndSize(r)}
	t.root, t.n = nil, 0

	return lt, rt
}

// SplitByPosition partitions the tree into (L of size i, R of size n-i);
// this tree becomes empty. Complexity: O(log n) expected.
func (t *RandomizedTree[K, V]) SplitByPosition(i int) (KeyedContainer[K, V], KeyedContainer[K, V], error) {
	if i < 0 || i > t.n {
		return nil, nil, fmt.Errorf("tree: RandomizedTree.SplitByPosition(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	if i == t.n {
		out := &RandomizedTree[K, V]{root: t.root, less: t.less, rng: t.rng, n: t.n}
		rt := &RandomizedTree[K, V]{less: t.less, rng: t.rng}
		t.root, t.n = nil, 0

		return out, rt, nil
	}
	k, _, _ := t.Select(i)
	l, r := rndSplit(t.root, k, t.less)
	lt := &RandomizedTree[K, V]{root: l, less: t.less, rng: t.rng, n: rndSize(l)}
	rt := &RandomizedTree[K, V]{root: r, less: t.less, rng: t.rng, n: rndSize(r)}
	t.root, t.n = nil, 0

	return lt, rt, nil
}

// Join merges other into t, requiring every key in other to be greater
// than every key in t; other becomes empty. Complexity: O(log n)
// expected. Fails with ErrDomain if other is not a *RandomizedTree[K, V].
func (t *RandomizedTree[K, V]) Join(other KeyedContainer[K, V]) error {
	o, err := t.asRandomized(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

// JoinExclusive concatenates other into t when max(t) < min(other) (or
// either is empty); other becomes empty. Complexity: O(log n) expected.
// Fails with ErrDomain if other is not a *RandomizedTree[K, V].
func (t *RandomizedTree[K, V]) JoinExclusive(other KeyedContainer[K, V]) error {
	o, err := t.asRandomized(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

func (t *RandomizedTree[K, V]) asRandomized(other KeyedContainer[K, V]) (*RandomizedTree[K, V], error) {
	o, ok := other.(*RandomizedTree[K, V])
	if !ok {
		return nil, fmt.Errorf("tree: RandomizedTree.Join: %T is not a *RandomizedTree: %w", other, ErrDomain)
	}

	return o, nil
}

func (t *RandomizedTree[K, V]) joinWith(other *RandomizedTree[K, V]) error {
	if other == nil || other.n == 0 {
		return nil
	}
	if t.n > 0 {
		lastKey, _, _ := t.Select(t.n - 1)
		firstKey, _, _ := other.Select(0)
		if !t.less(lastKey, firstKey) {
			return fmt.Errorf("tree: RandomizedTree.Join: key ranges overlap: %w", ErrDomain)
		}
	}
	t.root = rndJoin(t.root, other.root, t.rng)
	t.n += other.n
	other.root, other.n = nil, 0

	return nil
}
