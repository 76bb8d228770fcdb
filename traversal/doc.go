// Package traversal implements a generic depth-first and breadth-first
// driver over graph.Graph, parameterised by a Visitor with pre-order,
// tree-arc, non-tree-arc, and post-order hooks, plus an optional arc
// filter that hides arcs from the walk without copying the graph.
//
// DFS owns graph.BitDepthFirst and BFS owns graph.BitBreadthFirst: both
// set their bit on every node they visit and, if requested via
// WithRestoreBits, clear it again on exit.
package traversal
