package hashtable

import "fmt"

// Hasher computes a 64-bit digest for a key. Callers supply one at
// construction since Go has no built-in generic hash over comparable
// types that is stable and mixable the way the engines below need.
type Hasher[K any] func(k K) uint64

type chainNode[K, V any] struct {
	key  K
	val  V
	next *chainNode[K, V]
}

// ChainedMap implements a hashed keyed container with closed addressing
// (separate chaining).
//
// Zero value is not usable; construct with NewChainedMap.
type ChainedMap[K comparable, V any] struct {
	buckets   []*chainNode[K, V]
	m         uint64
	n         int
	hash      Hasher[K]
	eq        func(a, b K) bool
	alphaLo   float64
	alphaHi   float64
	canShrink bool
}

// ChainedMapOption configures a ChainedMap at construction time.
type ChainedMapOption[K comparable, V any] func(*ChainedMap[K, V])

// WithLoadFactorBand sets the [lo, hi] load-factor band that drives
// automatic resize. Default: [0.25, 2.0]
// — chaining tolerates a higher load factor than open addressing since a
// full bucket degrades to O(chain length), not to probe-sequence failure.
func WithLoadFactorBand[K comparable, V any](lo, hi float64) ChainedMapOption[K, V] {
	return func(m *ChainedMap[K, V]) { m.alphaLo, m.alphaHi = lo, hi }
}

// WithShrink enables shrinking the table on remove when the load factor
// drops below alphaLo. Default: disabled.
func WithShrink[K comparable, V any](enabled bool) ChainedMapOption[K, V] {
	return func(m *ChainedMap[K, V]) { m.canShrink = enabled }
}

// NewChainedMap creates an empty ChainedMap with the given hash and
// equality functions. Complexity: O(1).
func NewChainedMap[K comparable, V any](hash Hasher[K], eq func(a, b K) bool, opts ...ChainedMapOption[K, V]) *ChainedMap[K, V] {
	m := &ChainedMap[K, V]{
		buckets: make([]*chainNode[K, V], 8),
		m:       8,
		hash:    hash,
		eq:      eq,
		alphaLo: 0.25,
		alphaHi: 2.0,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Len returns the number of entries stored. Complexity: O(1).
func (m *ChainedMap[K, V]) Len() int { return m.n }

// Cap returns the current bucket-array size. Complexity: O(1).
func (m *ChainedMap[K, V]) Cap() int { return int(m.m) }

func (m *ChainedMap[K, V]) bucketIndex(k K) uint64 {
	return m.hash(k) % m.m
}

// Search returns the value for k, if present. Complexity: O(1) amortised.
func (m *ChainedMap[K, V]) Search(k K) (V, bool) {
	for c := m.buckets[m.bucketIndex(k)]; c != nil; c = c.next {
		if m.eq(c.key, k) {
			return c.val, true
		}
	}
	var zero V

	return zero, false
}

// Insert adds k/v, failing with ErrDuplicate if k is already present.
// Complexity: O(1) amortised.
func (m *ChainedMap[K, V]) Insert(k K, v V) error {
	if _, ok := m.Search(k); ok {
		return fmt.Errorf("hashtable: ChainedMap.Insert(%v): %w", k, ErrDuplicate)
	}
	m.insertNode(k, v)
	m.n++
	if float64(m.n)/float64(m.m) > m.alphaHi {
		m.rehash(nextPrime(2 * m.m))
	}

	return nil
}

// InsertDup adds k/v even if k is already present, prepending to the
// bucket's chain. Complexity: O(1)
// amortised.
func (m *ChainedMap[K, V]) InsertDup(k K, v V) {
	m.insertNode(k, v)
	m.n++
	if float64(m.n)/float64(m.m) > m.alphaHi {
		m.rehash(nextPrime(2 * m.m))
	}
}

func (m *ChainedMap[K, V]) insertNode(k K, v V) {
	i := m.bucketIndex(k)
	m.buckets[i] = &chainNode[K, V]{key: k, val: v, next: m.buckets[i]}
}

// Remove deletes k, returning its value and true if present.
// Complexity: O(1) amortised.
func (m *ChainedMap[K, V]) Remove(k K) (V, bool) {
	i := m.bucketIndex(k)
	var prev *chainNode[K, V]
	for c := m.buckets[i]; c != nil; c = c.next {
		if m.eq(c.key, k) {
			if prev == nil {
				m.buckets[i] = c.next
			} else {
				prev.next = c.next
			}
			m.n--
			if m.canShrink && m.m > 8 && float64(m.n)/float64(m.m) < m.alphaLo {
				m.rehash(max64(8, prevPrime(m.m/2)))
			}

			return c.val, true
		}
		prev = c
	}
	var zero V

	return zero, false
}

// Rehash rebuilds the table with newM buckets, purging no entries.
// Complexity: O(n + newM).
func (m *ChainedMap[K, V]) Rehash(newM int) {
	m.rehash(uint64(newM))
}

func (m *ChainedMap[K, V]) rehash(newM uint64) {
	old := m.buckets
	m.buckets = make([]*chainNode[K, V], newM)
	m.m = newM
	for _, head := range old {
		for c := head; c != nil; {
			next := c.next
			i := m.bucketIndex(c.key)
			c.next = m.buckets[i]
			m.buckets[i] = c
			c = next
		}
	}
}

// Each calls fn for every entry in unspecified order.
// Iteration stops early if fn returns false.
func (m *ChainedMap[K, V]) Each(fn func(K, V) bool) {
	for _, head := range m.buckets {
		for c := head; c != nil; c = c.next {
			if !fn(c.key, c.val) {
				return
			}
		}
	}
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}

	return b
}
