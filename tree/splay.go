package tree

import "fmt"

// splayNode is a node of a SplayTree: plain BST order, self-adjusting on
// every access so recently touched keys migrate toward the root.
// size is the rank-augmentation count(x).
type splayNode[K, V any] struct {
	key         K
	val         V
	left, right *splayNode[K, V]
	size        int
}

func (n *splayNode[K, V]) isNil() bool { return n == nil }
func (n *splayNode[K, V]) Key() K      { return n.key }
func (n *splayNode[K, V]) Value() V    { return n.val }
func (n *splayNode[K, V]) Left() iterNode[K, V] {
	if n == nil || n.left == nil {
		return (*splayNode[K, V])(nil)
	}

	return n.left
}
func (n *splayNode[K, V]) Right() iterNode[K, V] {
	if n == nil || n.right == nil {
		return (*splayNode[K, V])(nil)
	}

	return n.right
}

func splaySize[K, V any](n *splayNode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

func splayTouch[K, V any](n *splayNode[K, V]) {
	n.size = 1 + splaySize(n.left) + splaySize(n.right)
}

func splayRotateRight[K, V any](n *splayNode[K, V]) *splayNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	splayTouch(n)
	splayTouch(l)

	return l
}

func splayRotateLeft[K, V any](n *splayNode[K, V]) *splayNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	splayTouch(n)
	splayTouch(r)

	return r
}

// splay brings the node matching k to the root via the top-down
// zig/zig-zig/zig-zag scheme, or (if absent) brings the last node visited
// on the search path to the root.
func splaySplay[K, V any](n *splayNode[K, V], k K, less func(a, b K) bool) *splayNode[K, V] {
	if n == nil {
		return nil
	}
	if less(k, n.key) {
		if n.left == nil {
			return n
		}
		if less(k, n.left.key) {
			n.left.left = splaySplay(n.left.left, k, less)
			n = splayRotateRight(n)
		} else if less(n.left.key, k) {
			n.left.right = splaySplay(n.left.right, k, less)
			if n.left.right != nil {
				n.left = splayRotateLeft(n.left)
			}
		}
		if n.left == nil {
			return n
		}

		return splayRotateRight(n)
	}
	if less(n.key, k) {
		if n.right == nil {
			return n
		}
		if less(n.right.key, k) {
			n.right.right = splaySplay(n.right.right, k, less)
			n = splayRotateLeft(n)
		} else if less(k, n.right.key) {
			n.right.left = splaySplay(n.right.left, k, less)
			if n.right.left != nil {
				n.right = splayRotateRight(n.right)
			}
		}
		if n.right == nil {
			return n
		}

		return splayRotateLeft(n)
	}

	return n
}

// splayMax splays n's maximum key to the root, following the rightmost
// spine and applying the zig/zig-zig transform used by splaySplay,
// restricted to the always-go-right case. The returned root's right
// child is nil. Amortized complexity: O(log n).
func splayMax[K, V any](n *splayNode[K, V]) *splayNode[K, V] {
	if n == nil || n.right == nil {
		return n
	}
	if n.right.right == nil {
		return splayRotateLeft(n)
	}
	n.right.right = splayMax(n.right.right)
	n = splayRotateLeft(n)

	return splayRotateLeft(n)
}

// SplayTree implements KeyedContainer[K, V] as a top-down splay tree.
//
// Zero value is not usable; construct with NewSplayTree.
type SplayTree[K, V any] struct {
	root *splayNode[K, V]
	less func(a, b K) bool
	n    int
}

// NewSplayTree creates an empty SplayTree ordered by less. Complexity: O(1).
func NewSplayTree[K, V any](less func(a, b K) bool) *SplayTree[K, V] {
	return &SplayTree[K, V]{less: less}
}

// Len returns the number of keys stored. Complexity: O(1).
func (t *SplayTree[K, V]) Len() int { return t.n }

// Search returns the value for k, if present, splaying k (or the last
// node visited) to the root. Amortized complexity: O(log n).
func (t *SplayTree[K, V]) Search(k K) (V, bool) {
	if t.root == nil {
		var zero V

		return zero, false
	}
	t.root = splaySplay(t.root, k, t.less)
	if !t.less(k, t.root.key) && !t.less(t.root.key, k) {
		return t.root.val, true
	}
	var zero V

	return zero, false
}

// Insert adds k/v, failing with ErrDuplicate if k is already present.
// Amortized complexity: O(log n).
func (t *SplayTree[K, V]) Insert(k K, v V) error {
	if t.root != nil {
		t.root = splaySplay(t.root, k, t.less)
		if !t.less(k, t.root.key) && !t.less(t.root.key, k) {
			return fmt.Errorf("tree: SplayTree.Insert(%v): %w", k, ErrDuplicate)
		}
	}
	t.root = t.splayInsertRoot(k, v)
	t.n++

	return nil
}

// InsertDup adds k/v even if k is already present, leaving the new node
// as the root directly after the equal key that the splay brought to the
// root; among several equal keys the order is not guaranteed to be
// insertion order. Amortized complexity: O(log n).
func (t *SplayTree[K, V]) InsertDup(k K, v V) {
	if t.root != nil {
		t.root = splaySplay(t.root, k, t.less)
	}
	t.root = t.splayInsertRoot(k, v)
	t.n++
}

func (t *SplayTree[K, V]) splayInsertRoot(k K, v V) *splayNode[K, V] {
	nn := &splayNode[K, V]{key: k, val: v, size: 1}
	if t.root == nil {
		return nn
	}
	if t.less(k, t.root.key) {
		nn.left = t.root.left
		nn.right = t.root
		t.root.left = nil
	} else {
		nn.right = t.root.right
		nn.left = t.root
		t.root.right = nil
	}
	splayTouch(t.root)
	splayTouch(nn)

	return nn
}

// SearchOrInsert returns the existing value for k if present, otherwise
// inserts k/v and returns (v, true, nil). Amortized complexity: O(log n).
func (t *SplayTree[K, V]) SearchOrInsert(k K, v V) (V, bool, error) {
	if existing, ok := t.Search(k); ok {
		return existing, false, nil
	}
	t.root = t.splayInsertRoot(k, v)
	t.n++

	return v, true, nil
}

// Remove deletes k, returning its value and true if present. Amortized
// complexity: O(log n).
func (t *SplayTree[K, V]) Remove(k K) (V, bool) {
	if t.root == nil {
		var zero V

		return zero, false
	}
	t.root = splaySplay(t.root, k, t.less)
	if t.less(k, t.root.key) || t.less(t.root.key, k) {
		var zero V

		return zero, false
	}
	removed := t.root.val
	if t.root.left == nil {
		t.root = t.root.right
	} else {
		right := t.root.right
		t.root = splaySplay(t.root.left, k, t.less)
		t.root.right = right
		splayTouch(t.root)
	}
	t.n--

	return removed, true
}

// Select returns the i-th smallest (key, value) pair, 0-indexed.
// Complexity: O(log n).
func (t *SplayTree[K, V]) Select(i int) (K, V, error) {
	var zeroK K
	var zeroV V
	if i < 0 || i >= t.n {
		return zeroK, zeroV, fmt.Errorf("tree: SplayTree.Select(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	n := t.root
	for {
		ls := splaySize(n.left)
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
// Complexity: O(log n), does not splay.
func (t *SplayTree[K, V]) PositionOf(k K) (int, bool) {
	n := t.root
	pos := 0
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			pos += splaySize(n.left) + 1
			n = n.right
		default:
			return pos + splaySize(n.left), true
		}
	}

	return 0, false
}

// InOrder returns an ascending-key Iterator. Complexity: O(1) to build.
func (t *SplayTree[K, V]) InOrder() *Iterator[K, V] {
	if t.root == nil {
		return newIterator[K, V]((*splayNode[K, V])(nil))
	}

	return newIterator[K, V](t.root)
}

// SplitByKey partitions the tree into (L, R) with every key in L < k and
// every key in R >= k; this tree becomes empty.
//
// Complexity: O(log n) amortized — splays k (or its predecessor/
// successor) to the root, then detaches the half that belongs to the
// other side; no rebuild. After splaySplay, the root is either an
// exact match for k or adjacent to it in sorted order, so whichever
// side the root lands on, its untouched child subtree is exactly the
// other half.
func (t *SplayTree[K, V]) SplitByKey(k K) (KeyedContainer[K, V], KeyedContainer[K, V]) {
	// AI-HINT: do not call this on a tree you still need — t is always
	// emptied, even if k is absent.
	var l, r *splayNode[K, V]
	if t.root == nil {
		l, r = nil, nil
	} else {
		root := splaySplay(t.root, k, t.less)
		if t.less(root.key, k) {
			// root is k's predecessor: everything greater lands in R.
			r = root.right
			root.right = nil
			splayTouch(root)
			l = root
		} else {
			// root is k itself or k's successor: everything smaller lands in L.
			l = root.left
			root.left = nil
			splayTouch(root)
			r = root
		}
	}
	lt := &SplayTree[K, V]{root: l, less: t.less, n: splaySize(l)}
	rt := &SplayTree[K, V]{root: r, less: t.less, n: splaySize(r)}
	t.root, t.n = nil, 0

	return lt, rt
}

// SplitByPosition partitions the tree into (L of size i, R of size n-i);
// this tree becomes empty. Complexity: O(log n) amortized: Select(i)
// locates the boundary key in O(log n) without splaying, then
// SplitByKey does the actual O(log n) amortized split.
func (t *SplayTree[K, V]) SplitByPosition(i int) (KeyedContainer[K, V], KeyedContainer[K, V], error) {
	if i < 0 || i > t.n {
		return nil, nil, fmt.Errorf("tree: SplayTree.SplitByPosition(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	if i == t.n {
		out := &SplayTree[K, V]{root: t.root, less: t.less, n: t.n}
		rt := &SplayTree[K, V]{less: t.less}
		t.root, t.n = nil, 0

		return out, rt, nil
	}
	k, _, _ := t.Select(i)
	l, r := t.SplitByKey(k)

	return l, r, nil
}

// Join merges other into t, requiring every key in other to be greater
// than every key in t; other becomes empty. Complexity: O(log n)
// amortized. Fails with ErrDomain if other is not a *SplayTree[K, V].
func (t *SplayTree[K, V]) Join(other KeyedContainer[K, V]) error {
	o, err := t.asSplay(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

// JoinExclusive concatenates other into t when max(t) < min(other) (or
// either is empty); other becomes empty. Complexity: O(log n)
// amortized. Fails with ErrDomain if other is not a *SplayTree[K, V].
func (t *SplayTree[K, V]) JoinExclusive(other KeyedContainer[K, V]) error {
	o, err := t.asSplay(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

func (t *SplayTree[K, V]) asSplay(other KeyedContainer[K, V]) (*SplayTree[K, V], error) {
	o, ok := other.(*SplayTree[K, V])
	if !ok {
		return nil, fmt.Errorf("tree: SplayTree.Join: %T is not a *SplayTree: %w", other, ErrDomain)
	}

	return o, nil
}

// joinWith splays t's maximum to its root, then attaches other's root
// as its right child — the standard O(log n) amortized splay join,
// valid once every key in other is confirmed greater than every key
// already in t.
func (t *SplayTree[K, V]) joinWith(other *SplayTree[K, V]) error {
	if other == nil || other.n == 0 {
		return nil
	}
	if t.n > 0 {
		lastKey, _, _ := t.Select(t.n - 1)
		firstKey, _, _ := other.Select(0)
		if !t.less(lastKey, firstKey) {
			return fmt.Errorf("tree: SplayTree.Join: key ranges overlap: %w", ErrDomain)
		}
	}
	if t.root == nil {
		t.root = other.root
	} else {
		t.root = splayMax(t.root)
		t.root.right = other.root
		splayTouch(t.root)
	}
	t.n += other.n
	other.root, other.n = nil, 0

	return nil
}
