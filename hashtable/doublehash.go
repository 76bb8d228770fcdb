package hashtable

// DoubleHashMap implements a hashed keyed container with open addressing
// and double hashing: h_i(k) = (h1(k) + i·h2(k)) mod m, h2(k) forced odd
// and m kept prime so gcd(h2, m) = 1.
//
// Zero value is not usable; construct with NewDoubleHashMap.
type DoubleHashMap[K comparable, V any] struct {
	*openAddrMap[K, V]
}

// NewDoubleHashMap creates an empty DoubleHashMap using hash1 as the
// primary hash and hash2 as the step hash. Complexity: O(1).
func NewDoubleHashMap[K comparable, V any](hash1, hash2 Hasher[K], eq func(a, b K) bool) *DoubleHashMap[K, V] {
	return &DoubleHashMap[K, V]{openAddrMap: newOpenAddrMap[K, V](hash1, hash2, eq)}
}

// Len returns the number of entries stored. Complexity: O(1).
func (m *DoubleHashMap[K, V]) Len() int { return m.n }

// Cap returns the current slot-array size. Complexity: O(1).
func (m *DoubleHashMap[K, V]) Cap() int { return int(m.m) }

// Search returns the value for k, if present. Complexity: O(1) expected.
func (m *DoubleHashMap[K, V]) Search(k K) (V, bool) { return m.search(k) }

// Insert adds k/v, failing with ErrDuplicate if present or
// ErrCapacityExhausted if the table is full and cannot grow.
// Complexity: O(1) expected.
func (m *DoubleHashMap[K, V]) Insert(k K, v V) error { return m.insert(k, v) }

// Remove deletes k, returning its value and true if present, leaving a
// Deleted marker so later probe chains stay intact.
// Complexity: O(1) expected.
func (m *DoubleHashMap[K, V]) Remove(k K) (V, bool) { return m.remove(k) }

// Rehash rebuilds the table with the next prime >= newM buckets.
func (m *DoubleHashMap[K, V]) Rehash(newM int) error { return m.rehash(nextPrime(uint64(newM))) }

// Each calls fn for every entry in unspecified order.
func (m *DoubleHashMap[K, V]) Each(fn func(K, V) bool) { m.each(fn) }
