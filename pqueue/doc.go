// Package pqueue implements two priority-queue flavours: BinaryHeap, an
// indexable array-backed binary heap, and
// PairingHeap, a meldable handle-bearing queue supporting decrease-key
// and meld (meld costs time linear in the size of the absorbed queue).
package pqueue
