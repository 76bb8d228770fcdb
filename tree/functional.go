package tree

// KeyedContainer is the contract implemented once by each of this
// package's five engines. Split/Join return and consume
// the same interface so callers can compose engines generically, though
// JoinExclusive/Join reject mismatched concrete engine kinds with
// ErrDomain (merging, say, an AVLTree into a Treap has no defined
// rebalancing strategy).
type KeyedContainer[K, V any] interface {
	Search(k K) (V, bool)
	Insert(k K, v V) error
	InsertDup(k K, v V)
	SearchOrInsert(k K, v V) (V, bool, error)
	Remove(k K) (V, bool)
	Select(i int) (K, V, error)
	PositionOf(k K) (int, bool)
	Len() int
	InOrder() *Iterator[K, V]
	// SplitByKey divides the container at k: the left result holds every
	// key < k, the right every key >= k.
	SplitByKey(k K) (KeyedContainer[K, V], KeyedContainer[K, V])
	// SplitByPosition divides the container at in-order index i: the
	// left result holds the first i entries, the right the rest.
	SplitByPosition(i int) (KeyedContainer[K, V], KeyedContainer[K, V], error)
	// Join absorbs other into the receiver; every key in other must be
	// strictly greater than every key already in the receiver. Fails
	// with ErrDomain if other is a different concrete engine kind.
	Join(other KeyedContainer[K, V]) error
	// JoinExclusive concatenates other onto the receiver under the same
	// precondition as Join: max(receiver) < min(other), or either is
	// empty; otherwise it fails with ErrDomain.
	JoinExclusive(other KeyedContainer[K, V]) error
}

// Fold reduces every (key, value) pair in ascending order into a single
// accumulator. Complexity: O(n).
func Fold[K, V, A any](c KeyedContainer[K, V], init A, fn func(A, K, V) A) A {
	acc := init
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return acc
		}
		acc = fn(acc, p.Key, p.Value)
	}
}

// Map applies fn to every (key, value) pair and returns the results in
// ascending-key order. Complexity: O(n).
func Map[K, V, R any](c KeyedContainer[K, V], fn func(K, V) R) []R {
	out := make([]R, 0, c.Len())
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, fn(p.Key, p.Value))
	}
}

// Filter returns every (key, value) pair for which pred holds, in
// ascending-key order. Complexity: O(n).
func Filter[K, V any](c KeyedContainer[K, V], pred func(K, V) bool) []Pair[K, V] {
	var out []Pair[K, V]
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		if pred(p.Key, p.Value) {
			out = append(out, p)
		}
	}
}

// All reports whether pred holds for every (key, value) pair. Short
// circuits on the first failure. Complexity: O(n) worst case.
func All[K, V any](c KeyedContainer[K, V], pred func(K, V) bool) bool {
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return true
		}
		if !pred(p.Key, p.Value) {
			return false
		}
	}
}

// Exists reports whether pred holds for at least one (key, value) pair.
// Short circuits on the first success. Complexity: O(n) worst case.
func Exists[K, V any](c KeyedContainer[K, V], pred func(K, V) bool) bool {
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return false
		}
		if pred(p.Key, p.Value) {
			return true
		}
	}
}

// Partition splits every (key, value) pair into two slices: those for
// which pred holds, and the rest, both in ascending-key order.
// Complexity: O(n).
func Partition[K, V any](c KeyedContainer[K, V], pred func(K, V) bool) (yes, no []Pair[K, V]) {
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return yes, no
		}
		if pred(p.Key, p.Value) {
			yes = append(yes, p)
		} else {
			no = append(no, p)
		}
	}
}

// Zip pairs up the ascending-key sequences of a and b positionally,
// stopping at the shorter one's end. Complexity: O(min(|a|, |b|)).
func Zip[K, V any](a, b KeyedContainer[K, V]) []struct{ A, B Pair[K, V] } {
	ia, ib := a.InOrder(), b.InOrder()
	var out []struct{ A, B Pair[K, V] }
	for {
		pa, oka := ia.Next()
		pb, okb := ib.Next()
		if !oka || !okb {
			return out
		}
		out = append(out, struct{ A, B Pair[K, V] }{pa, pb})
	}
}

// GroupBy buckets every (key, value) pair by keyFn(key, value),
// preserving ascending-key order within each bucket.
// Complexity: O(n).
func GroupBy[K, V any, G comparable](c KeyedContainer[K, V], keyFn func(K, V) G) map[G][]Pair[K, V] {
	out := make(map[G][]Pair[K, V])
	it := c.InOrder()
	for {
		p, ok := it.Next()
		if !ok {
			return out
		}
		g := keyFn(p.Key, p.Value)
		out[g] = append(out[g], p)
	}
}
