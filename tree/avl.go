package tree

import "fmt"

// avlNode is a node of an AVLTree: BST order plus the AVL balance
// invariant |height(left) - height(right)| <= 1. size is
// the rank-augmentation count(x) = 1 + count(left) + count(right),
// carried on every node to support O(log n) rank/select queries.
type avlNode[K, V any] struct {
	key         K
	val         V
	left, right *avlNode[K, V]
	height      int
	size        int
}

func (n *avlNode[K, V]) isNil() bool { return n == nil }
func (n *avlNode[K, V]) Key() K      { return n.key }
func (n *avlNode[K, V]) Value() V    { return n.val }
func (n *avlNode[K, V]) Left() iterNode[K, V] {
	if n == nil || n.left == nil {
		return (*avlNode[K, V])(nil)
	}

	return n.left
}
func (n *avlNode[K, V]) Right() iterNode[K, V] {
	if n == nil || n.right == nil {
		return (*avlNode[K, V])(nil)
	}

	return n.right
}

func avlHeight[K, V any](n *avlNode[K, V]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func avlSize[K, V any](n *avlNode[K, V]) int {
	if n == nil {
		return 0
	}

	return n.size
}

func avlTouch[K, V any](n *avlNode[K, V]) {
	n.height = 1 + max(avlHeight(n.left), avlHeight(n.right))
	n.size = 1 + avlSize(n.left) + avlSize(n.right)
}

func avlBalanceFactor[K, V any](n *avlNode[K, V]) int {
	return avlHeight(n.left) - avlHeight(n.right)
}

func avlRotateRight[K, V any](n *avlNode[K, V]) *avlNode[K, V] {
	l := n.left
	n.left = l.right
	l.right = n
	avlTouch(n)
	avlTouch(l)

	return l
}

func avlRotateLeft[K, V any](n *avlNode[K, V]) *avlNode[K, V] {
	r := n.right
	n.right = r.left
	r.left = n
	avlTouch(n)
	avlTouch(r)

	return r
}

func avlRebalance[K, V any](n *avlNode[K, V]) *avlNode[K, V] {
	avlTouch(n)
	bf := avlBalanceFactor(n)
	if bf > 1 {
		if avlBalanceFactor(n.left) < 0 {
			n.left = avlRotateLeft(n.left)
		}

		return avlRotateRight(n)
	}
	if bf < -1 {
		if avlBalanceFactor(n.right) > 0 {
			n.right = avlRotateRight(n.right)
		}

		return avlRotateLeft(n)
	}

	return n
}

// AVLTree implements KeyedContainer[K, V] as an AVL tree.
//
// Zero value is not usable; construct with NewAVLTree.
type AVLTree[K, V any] struct {
	root *avlNode[K, V]
	less func(a, b K) bool
	n    int
}

// NewAVLTree creates an empty AVLTree ordered by less.
// Complexity: O(1).
func NewAVLTree[K, V any](less func(a, b K) bool) *AVLTree[K, V] {
	return &AVLTree[K, V]{less: less}
}

// Len returns the number of keys stored. Complexity: O(1).
func (t *AVLTree[K, V]) Len() int { return t.n }

// Search returns the value for k, if present. Complexity: O(log n).
func (t *AVLTree[K, V]) Search(k K) (V, bool) {
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
// Complexity: O(log n).
func (t *AVLTree[K, V]) Insert(k K, v V) error {
	if _, ok := t.Search(k); ok {
		return fmt.Errorf("tree: AVLTree.Insert(%v): %w", k, ErrDuplicate)
	}
	t.root = t.avlInsert(t.root, k, v, false)
	t.n++

	return nil
}

// InsertDup adds k/v even if k is already present; the new node lands to
// the right of any equal key, so in-order traversal visits ties in
// insertion order. Complexity: O(log n).
func (t *AVLTree[K, V]) InsertDup(k K, v V) {
	t.root = t.avlInsert(t.root, k, v, true)
	t.n++
}

// SearchOrInsert returns the existing value for k if present, otherwise
// inserts k/v and returns (v, true, nil). Complexity: O(log n).
func (t *AVLTree[K, V]) SearchOrInsert(k K, v V) (V, bool, error) {
	if existing, ok := t.Search(k); ok {
		return existing, false, nil
	}
	t.root = t.avlInsert(t.root, k, v, false)
	t.n++

	return v, true, nil
}

func (t *AVLTree[K, V]) avlInsert(n *avlNode[K, V], k K, v V, dup bool) *avlNode[K, V] {
	if n == nil {
		return &avlNode[K, V]{key: k, val: v, height: 0, size: 1}
	}
	switch {
	case t.less(k, n.key):
		n.left = t.avlInsert(n.left, k, v, dup)
	case t.less(n.key, k):
		n.right = t.avlInsert(n.right, k, v, dup)
	default:
		if dup {
			// tie-break right: duplicates descend into the right subtree
			n.right = t.avlInsert(n.right, k, v, dup)
		} else {
			n.val = v

			return n
		}
	}

	return avlRebalance(n)
}

// Remove deletes k, returning its value and true if present.
// Complexity: O(log n).
func (t *AVLTree[K, V]) Remove(k K) (V, bool) {
	var removed V
	var found bool
	t.root, removed, found = t.avlRemove(t.root, k)
	if found {
		t.n--
	}

	return removed, found
}

func (t *AVLTree[K, V]) avlRemove(n *avlNode[K, V], k K) (*avlNode[K, V], V, bool) {
	var zero V
	if n == nil {
		return nil, zero, false
	}
	var removed V
	var found bool
	switch {
	case t.less(k, n.key):
		n.left, removed, found = t.avlRemove(n.left, k)
	case t.less(n.key, k):
		n.right, removed, found = t.avlRemove(n.right, k)
	default:
		removed, found = n.val, true
		if n.left == nil {
			return n.right, removed, found
		}
		if n.right == nil {
			return n.left, removed, found
		}
		// two children: splice in the in-order successor (leftmost of right)
		succ := n.right
		for succ.left != nil {
			succ = succ.left
		}
		n.key, n.val = succ.key, succ.val
		n.right, _, _ = t.avlRemove(n.right, succ.key)
	}
	if n == nil {
		return nil, removed, found
	}

	return avlRebalance(n), removed, found
}

// Select returns the i-th smallest (key, value) pair, 0-indexed.
// Complexity: O(log n).
func (t *AVLTree[K, V]) Select(i int) (K, V, error) {
	var zeroK K
	var zeroV V
	if i < 0 || i >= t.n {
		return zeroK, zeroV, fmt.Errorf("tree: AVLTree.Select(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	n := t.root
	for {
		ls := avlSize(n.left)
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
// Complexity: O(log n).
func (t *AVLTree[K, V]) PositionOf(k K) (int, bool) {
	n := t.root
	pos := 0
	for n != nil {
		switch {
		case t.less(k, n.key):
			n = n.left
		case t.less(n.key, k):
			pos += avlSize(n.left) + 1
			n = n.right
		default:
			return pos + avlSize(n.left), true
		}
	}

	return 0, false
}

// InOrder returns an ascending-key Iterator. Complexity: O(1) to build.
func (t *AVLTree[K, V]) InOrder() *Iterator[K, V] {
	if t.root == nil {
		return newIterator[K, V]((*avlNode[K, V])(nil))
	}

	return newIterator[K, V](t.root)
}

// SplitByKey partitions the tree into (L, R) with every key in L < k and
// every key in R >= k (k's own entry, if present, lands in R);
// this tree becomes empty.
//
// Complexity: O(n) — rebuilt from a sorted snapshot rather than split in
// O(log n); see DESIGN.md for why a weight-balanced join-based split is
// not worth the added complexity here.
func (t *AVLTree[K, V]) SplitByKey(k K) (KeyedContainer[K, V], KeyedContainer[K, V]) {
	pairs := t.InOrder().Collect()
	i := 0
	for i < len(pairs) && t.less(pairs[i].Key, k) {
		i++
	}
	l := avlFromSorted(pairs[:i], t.less)
	r := avlFromSorted(pairs[i:], t.less)
	t.root, t.n = nil, 0

	return l, r
}

// SplitByPosition partitions the tree into (L of size i, R of size n-i);
// this tree becomes empty. Complexity: O(n), see SplitByKey.
func (t *AVLTree[K, V]) SplitByPosition(i int) (KeyedContainer[K, V], KeyedContainer[K, V], error) {
	if i < 0 || i > t.n {
		return nil, nil, fmt.Errorf("tree: AVLTree.SplitByPosition(%d) n=%d: %w", i, t.n, ErrOutOfRange)
	}
	pairs := t.InOrder().Collect()
	l := avlFromSorted(pairs[:i], t.less)
	r := avlFromSorted(pairs[i:], t.less)
	t.root, t.n = nil, 0

	return l, r, nil
}

// Join merges other into t, requiring every key in other to be greater
// than every key in t; other becomes empty. Complexity: O(n + m). Fails
// with ErrDomain if other is not an *AVLTree[K, V].
func (t *AVLTree[K, V]) Join(other KeyedContainer[K, V]) error {
	o, err := t.asAVL(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

// JoinExclusive concatenates other into t when max(t) < min(other) (or
// either is empty); other becomes empty. Complexity: O(n + m). Fails
// with ErrDomain if other is not an *AVLTree[K, V].
func (t *AVLTree[K, V]) JoinExclusive(other KeyedContainer[K, V]) error {
	o, err := t.asAVL(other)
	if err != nil {
		return err
	}

	return t.joinWith(o)
}

func (t *AVLTree[K, V]) asAVL(other KeyedContainer[K, V]) (*AVLTree[K, V], error) {
	o, ok := other.(*AVLTree[K, V])
	if !ok {
		return nil, fmt.Errorf("tree: AVLTree.Join: %T is not an *AVLTree: %w", other, ErrDomain)
	}

	return o, nil
}

func (t *AVLTree[K, V]) joinWith(other *AVLTree[K, V]) error {
	if other == nil || other.n == 0 {
		return nil
	}
	if t.n > 0 {
		lastKey, _, _ := t.Select(t.n - 1)
		firstKey, _, _ := other.Select(0)
		if !t.less(lastKey, firstKey) {
			return fmt.Errorf("tree: AVLTree.Join: key ranges overlap: %w", ErrDomain)
		}
	}
	merged := append(t.InOrder().Collect(), other.InOrder().Collect()...)
	t.root = avlFromSorted(merged, t.less).root
	t.n = len(merged)
	other.root, other.n = nil, 0

	return nil
}

// avlFromSorted rebuilds a height-balanced AVLTree from an
// already-sorted pairs slice in O(n), by recursively choosing the
// middle element as each subtree's root.
func avlFromSorted[K, V any](pairs []Pair[K, V], less func(a, b K) bool) *AVLTree[K, V] {
	t := NewAVLTree[K, V](less)
	t.root = avlBuildBalanced(pairs)
	t.n = len(pairs)

	return t
}

func avlBuildBalanced[K, V any](pairs []Pair[K, V]) *avlNode[K, V] {
	if len(pairs) == 0 {
		return nil
	}
	mid := len(pairs) / 2
	n := &avlNode[K, V]{key: pairs[mid].Key, val: pairs[mid].Value}
	n.left = avlBuildBalanced(pairs[:mid])
	n.right = avlBuildBalanced(pairs[mid+1:])
	avlTouch(n)

	return n
}
