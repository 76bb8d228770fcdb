// Package hashtable implements the hashed flavour of keyed container:
// ChainedMap uses closed addressing (separate chaining),
// LinearProbeMap and DoubleHashMap use open addressing over a flat slot
// array with a Busy/Deleted status plane backed by package bitvector.
//
// All three grow by load-factor band, picking the next prime at or above
// 2m, mirroring the probe-sequence requirements that m be prime for
// double hashing. ChainedMap's band is set with WithLoadFactorBand, and
// with WithShrink it also shrinks to the previous prime at or below m/2.
// LinearProbeMap and DoubleHashMap use a fixed band of [0.1, 0.7], take
// no options, and never shrink.
package hashtable
