package maxflow

import (
	"math"

	"github.com/lrleon/alephw/graph"
)

// half distinguishes the in-vertex and out-vertex a node is split into.
type half int

const (
	halfIn half = iota
	halfOut
)

// SplitNode identifies one half of an original node in the vertex-split
// auxiliary digraph built by SplitNodeCapacities.
type SplitNode struct {
	Orig graph.NodeID
	Half half
}

// SplitHalves records, for one original node, the ids of its in-vertex
// and out-vertex in the split digraph.
type SplitHalves struct {
	In, Out graph.NodeID
}

// SplitNodeCapacities builds the auxiliary digraph of §3 bounding
// per-node throughput: every node v with a declared capacity k is
// replaced by an in-vertex v⁻ and an out-vertex v⁺ joined by a single
// arc of capacity k; every original in-arc redirects to v⁻ and every
// original out-arc originates at v⁺. Nodes absent from nodeCapacity are
// split with unlimited (+Inf) internal capacity, i.e. unconstrained.
//
// Running EdmondsKarp/MinCut on the result with source = halves[source].Out
// and sink = halves[sink].In enforces the node-capacity bound; the
// reported flow/cut translate back to the original graph via halves.
func SplitNodeCapacities[N, A any](g *graph.Graph[N, A], nodeCapacity map[graph.NodeID]float64, arcCapacity Capacity[A]) (*graph.Graph[SplitNode, float64], map[graph.NodeID]SplitHalves, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	split := graph.NewDigraph[SplitNode, float64](graph.DoublyLinked)
	halves := make(map[graph.NodeID]SplitHalves)

	g.EachNode(func(id graph.NodeID) bool {
		in := split.InsertNode(SplitNode{Orig: id, Half: halfIn})
		out := split.InsertNode(SplitNode{Orig: id, Half: halfOut})
		halves[id] = SplitHalves{In: in, Out: out}

		k, ok := nodeCapacity[id]
		if !ok {
			k = math.Inf(1)
		}
		_, _ = split.InsertArc(in, out, k)

		return true
	})

	var insertErr error
	g.EachArc(func(a graph.ArcID) bool {
		u, uerr := g.Src(a)
		v, verr := g.Tgt(a)
		info, ierr := g.ArcInfo(a)
		if uerr != nil || verr != nil || ierr != nil {
			return true
		}
		if _, err := split.InsertArc(halves[u].Out, halves[v].In, arcCapacity(info)); err != nil {
			insertErr = err

			return false
		}
		if !g.IsDirected() && u != v {
			if _, err := split.InsertArc(halves[v].Out, halves[u].In, arcCapacity(info)); err != nil {
				insertErr = err

				return false
			}
		}

		return true
	})
	if insertErr != nil {
		return nil, nil, insertErr
	}

	return split, halves, nil
}
