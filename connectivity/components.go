package connectivity

import (
	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/traversal"
)

type collectVisitor struct {
	traversal.BaseVisitor
	nodes []graph.NodeID
}

func (v *collectVisitor) OnNode(n graph.NodeID) traversal.Signal {
	v.nodes = append(v.nodes, n)

	return traversal.Continue
}

// Components partitions an undirected g's nodes into connected
// components. On a digraph the DFS follows outgoing arcs only: each
// result is the set of nodes reachable forward from a root not listed in
// an earlier result, so the results are not weakly-connected components
// and a node may appear in more than one of them.
//
// Complexity: O(num nodes + num arcs).
func Components[N, A any](g *graph.Graph[N, A]) ([][]graph.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	seen := make(map[graph.NodeID]bool)
	var comps [][]graph.NodeID

	var err error
	g.EachNode(func(id graph.NodeID) bool {
		if seen[id] {
			return true
		}
		v := &collectVisitor{}
		if err = traversal.DFS[N, A](g, id, v); err != nil {
			return false
		}
		for _, n := range v.nodes {
			seen[n] = true
		}
		comps = append(comps, v.nodes)

		return true
	})

	return comps, err
}
