package hashtable

import (
	"fmt"

	"github.com/lrleon/alephw/bitvector"
)

type openAddrSlot[K, V any] struct {
	key K
	val V
}

// openAddrMap is the shared engine behind LinearProbeMap and
// DoubleHashMap: a flat slot array plus a Busy/Deleted status plane,
// backed by bitvector rather than a status []byte array.
type openAddrMap[K comparable, V any] struct {
	slots   []openAddrSlot[K, V]
	busy    *bitvector.BitVector
	deleted *bitvector.BitVector
	m       uint64
	n       int
	hash    Hasher[K]
	hash2   Hasher[K] // nil selects linear probing
	eq      func(a, b K) bool
	alphaLo float64
	alphaHi float64
	shrink  bool
}

func newOpenAddrMap[K comparable, V any](hash, hash2 Hasher[K], eq func(a, b K) bool) *openAddrMap[K, V] {
	m := uint64(11)

	return &openAddrMap[K, V]{
		slots:   make([]openAddrSlot[K, V], m),
		busy:    bitvector.New(uint(m)),
		deleted: bitvector.New(uint(m)),
		m:       m,
		hash:    hash,
		hash2:   hash2,
		eq:      eq,
		alphaLo: 0.1,
		alphaHi: 0.7,
	}
}

// step computes the double-hashing increment for k, forced odd and
// nonzero so gcd(step, m) = 1 when m is prime.
func (m *openAddrMap[K, V]) step(k K) uint64 {
	if m.hash2 == nil {
		return 1
	}
	s := m.hash2(k) % (m.m - 1)
	if s == 0 {
		s = 1
	}
	if s%2 == 0 {
		s--
		if s == 0 {
			s = 1
		}
	}

	return s
}

// find walks k's probe sequence. If k is present it returns k's slot and
// true; otherwise it returns the slot k would be inserted into (the first
// Deleted slot on the sequence, else the first empty one) and false.
func (m *openAddrMap[K, V]) find(k K) (idx uint64, found bool) {
	h := m.hash(k) % m.m
	st := m.step(k)
	firstDeleted, haveDeleted := uint64(0), false
	for i := uint64(0); i < m.m; i++ {
		j := (h + i*st) % m.m
		if !m.busy.Test(uint(j)) {
			if m.deleted.Test(uint(j)) {
				if !haveDeleted {
					firstDeleted, haveDeleted = j, true
				}

				continue
			}
			if haveDeleted {
				return firstDeleted, false
			}

			return j, false
		}
		if m.eq(m.slots[j].key, k) {
			return j, true
		}
	}
	if haveDeleted {
		return firstDeleted, false
	}

	return 0, false
}

func (m *openAddrMap[K, V]) search(k K) (V, bool) {
	idx, found := m.find(k)
	if !found {
		var zero V

		return zero, false
	}

	return m.slots[idx].val, true
}

// insert requires k to be absent; duplicates are rejected with
// ErrDuplicate since open addressing has no chain to append to.
func (m *openAddrMap[K, V]) insert(k K, v V) error {
	if _, ok := m.search(k); ok {
		return ErrDuplicate
	}
	if m.n >= int(m.m) {
		return ErrCapacityExhausted
	}
	idx, _ := m.find(k)
	m.slots[idx] = openAddrSlot[K, V]{key: k, val: v}
	m.busy.Set(uint(idx))
	m.deleted.Clear(uint(idx))
	m.n++
	if float64(m.n)/float64(m.m) > m.alphaHi {
		if err := m.rehash(nextPrime(2 * m.m)); err != nil {
			return err
		}
	}

	return nil
}

func (m *openAddrMap[K, V]) remove(k K) (V, bool) {
	idx, found := m.find(k)
	if !found {
		var zero V

		return zero, false
	}
	v := m.slots[idx].val
	m.busy.Clear(uint(idx))
	m.deleted.Set(uint(idx))
	m.n--
	if m.shrink && m.m > 11 && float64(m.n)/float64(m.m) < m.alphaLo {
		_ = m.rehash(max64(11, prevPrime(m.m/2)))
	}

	return v, true
}

func (m *openAddrMap[K, V]) rehash(newM uint64) error {
	oldSlots, oldBusy := m.slots, m.busy
	m.slots = make([]openAddrSlot[K, V], newM)
	m.busy = bitvector.New(uint(newM))
	m.deleted = bitvector.New(uint(newM))
	m.m = newM
	m.n = 0
	for i, slot := range oldSlots {
		if oldBusy.Test(uint(i)) {
			if err := m.insert(slot.key, slot.val); err != nil {
				return fmt.Errorf("hashtable: rehash: %w", err)
			}
		}
	}

	return nil
}

func (m *openAddrMap[K, V]) each(fn func(K, V) bool) {
	for i := uint64(0); i < m.m; i++ {
		if m.busy.Test(uint(i)) {
			if !fn(m.slots[i].key, m.slots[i].val) {
				return
			}
		}
	}
}
