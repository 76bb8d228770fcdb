package hashtable

// LinearProbeMap implements a hashed keyed container with open
// addressing and linear probing: h_i(k) = (h(k) + i) mod m.
//
// Zero value is not usable; construct with NewLinearProbeMap.
type LinearProbeMap[K comparable, V any] struct {
	*openAddrMap[K, V]
}

// NewLinearProbeMap creates an empty LinearProbeMap. Complexity: O(1).
func NewLinearProbeMap[K comparable, V any](hash Hasher[K], eq func(a, b K) bool) *LinearProbeMap[K, V] {
	return &LinearProbeMap[K, V]{openAddrMap: newOpenAddrMap[K, V](hash, nil, eq)}
}

// Len returns the number of entries stored. Complexity: O(1).
func (m *LinearProbeMap[K, V]) Len() int { return m.n }

// Cap returns the current slot-array size. Complexity: O(1).
func (m *LinearProbeMap[K, V]) Cap() int { return int(m.m) }

// Search returns the value for k, if present.
// Complexity: O(1/(1-α)) expected.
func (m *LinearProbeMap[K, V]) Search(k K) (V, bool) { return m.search(k) }

// Insert adds k/v, failing with ErrDuplicate if present or
// ErrCapacityExhausted if the table is full and cannot grow.
// Complexity: O(1/(1-α)) expected.
func (m *LinearProbeMap[K, V]) Insert(k K, v V) error { return m.insert(k, v) }

// Remove deletes k, returning its value and true if present, leaving a
// Deleted marker so later probe chains stay intact.
// Complexity: O(1/(1-α)) expected.
func (m *LinearProbeMap[K, V]) Remove(k K) (V, bool) { return m.remove(k) }

// Rehash rebuilds the table with the next prime >= newM buckets.
func (m *LinearProbeMap[K, V]) Rehash(newM int) error { return m.rehash(nextPrime(uint64(newM))) }

// Each calls fn for every entry in unspecified order.
func (m *LinearProbeMap[K, V]) Each(fn func(K, V) bool) { m.each(fn) }
