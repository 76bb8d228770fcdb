// Package shortestpath computes single-source and all-pairs shortest
// paths over a graph.Graph whose arc payloads carry a weight extracted
// by a caller-supplied Weight function (the graph core has no built-in
// notion of weight).
//
// Dijkstra (with an optional A* heuristic) requires non-negative
// weights; Bellman-Ford tolerates negative weights and reports a
// negative cycle; Johnson computes all-pairs distances by reweighting
// with a Bellman-Ford pass and fanning per-source Dijkstra runs out
// across golang.org/x/sync/errgroup.
package shortestpath
