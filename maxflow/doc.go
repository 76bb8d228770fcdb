// Package maxflow computes maximum flow and minimum cut over an
// auxiliary residual network built from a graph.Graph: each original
// arc u->v with capacity c contributes a forward residual arc u->v and
// a backward residual arc v->u, maintained as a reciprocal pair as flow
// is pushed. EdmondsKarp finds augmenting paths by BFS (fewest arcs);
// MinCut partitions nodes into the set reachable from the source in the
// final residual network and the rest, and reports the original arcs
// crossing that boundary. SplitNodeCapacities builds the vertex-split
// auxiliary digraph used to bound per-node (rather than per-arc)
// capacity.
//
// AI-HINT (file):
//   - Pass WithLogger to trace each augmenting path and its bottleneck
//     at Debug level; default is silent.
//   - SplitNodeCapacities' output graph is the one to feed into
//     EdmondsKarp/MinCut when bounding per-node capacity, not the
//     original.
package maxflow
