// Package bitvector provides a rank/select-friendly bit array, backing
// the hash table's open-addressing Busy/Deleted status planes and any algorithm that needs a compact visited set
// over a dense integer ID space.
//
// Built directly on github.com/bits-and-blooms/bitset rather than
// reimplemented: that library already exposes the Count/NextSet
// primitives rank and select are thin wrappers over.
package bitvector

import "github.com/bits-and-blooms/bitset"

// BitVector is a growable bit array with O(1) amortized Set/Clear/Test.
// Rank and Select walk the set bits one NextSet hop at a time, so their
// cost grows with the number of set bits visited (see each method).
//
// Zero value is ready to use.
type BitVector struct {
	bs *bitset.BitSet
}

// New creates a BitVector with room for at least n bits, all initially
// clear. Complexity: O(n/64).
func New(n uint) *BitVector {
	return &BitVector{bs: bitset.New(n)}
}

// Set sets bit i to 1, growing the vector if necessary.
// Complexity: amortized O(1).
func (v *BitVector) Set(i uint) {
	v.ensure()
	v.bs.Set(i)
}

// Clear sets bit i to 0. Complexity: O(1).
func (v *BitVector) Clear(i uint) {
	v.ensure()
	v.bs.Clear(i)
}

// Test reports whether bit i is set. Complexity: O(1).
func (v *BitVector) Test(i uint) bool {
	v.ensure()

	return v.bs.Test(i)
}

// Len returns the number of bits addressable without growing.
// Complexity: O(1).
func (v *BitVector) Len() uint {
	v.ensure()

	return v.bs.Len()
}

// Rank returns the number of set bits in [0, i) — the classic
// rank-select query.
// Complexity: O(rank(i)) set-bit hops.
func (v *BitVector) Rank(i uint) uint {
	v.ensure()
	var n uint
	for j, ok := v.bs.NextSet(0); ok && j < i; j, ok = v.bs.NextSet(j + 1) {
		n++
	}

	return n
}

// Select returns the index of the k-th set bit (0-based) and true, or
// (0, false) if fewer than k+1 bits are set.
// Complexity: O(Select result / 64).
func (v *BitVector) Select(k uint) (uint, bool) {
	v.ensure()
	var count uint
	for j, ok := v.bs.NextSet(0); ok; j, ok = v.bs.NextSet(j + 1) {
		if count == k {
			return j, true
		}
		count++
	}

	return 0, false
}

// PopCount returns the total number of set bits.
// Complexity: O(Len()/64).
func (v *BitVector) PopCount() uint {
	v.ensure()

	return uint(v.bs.Count())
}

func (v *BitVector) ensure() {
	if v.bs == nil {
		v.bs = bitset.New(0)
	}
}
