// Package connectivity computes structural connectivity properties of a
// graph.Graph: connected components of an undirected graph (weakly-connected
// components of a digraph are not computed), strongly-connected components of a digraph via
// Tarjan's and Kosaraju's algorithms, and the cut vertices and blocks
// (biconnected components) of an undirected graph.
package connectivity
