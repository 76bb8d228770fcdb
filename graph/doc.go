// Package graph implements a storage-agnostic graph/digraph contract:
// a Graph is built over one of three adjacency
// back-ends — doubly-linked, singly-linked, or packed-array — selected
// at construction and otherwise invisible to callers. Every node and arc
// carries scratch state (Bits, Counter, Cookie) that traversal and
// algorithm packages use to mark visited state without a side map.
package graph
