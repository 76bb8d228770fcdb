// Package mst computes a minimum spanning tree of an undirected,
// weighted graph.Graph: Kruskal via union-find over arcs sorted by
// ascending weight, and Prim via a binary-heap frontier grown outward
// from a chosen root. Both report ErrDisconnected if the graph has no
// spanning tree, and agree on the MST's total weight (though not
// necessarily its arc set, when weights tie).
package mst
