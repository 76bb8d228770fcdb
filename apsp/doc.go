// Package apsp computes all-pairs shortest distances and the transitive
// closure of a graph.Graph by dense dynamic programming over a V×V
// matrix, rather than repeated single-source runs.
//
// FloydWarshall tolerates negative arc weights (reporting a negative
// cycle if one is reachable) and simultaneously builds a next-hop
// matrix for path reconstruction. TransitiveClosure (Warshall) answers
// pure reachability with the same triply-nested relaxation over a
// boolean matrix, ignoring weights entirely.
package apsp
