package shortestpath

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
)

// arcEndpoints is a flattened (src, tgt, weight) view of g's arcs,
// computed once so BellmanFord's |V|-1 relaxation passes don't pay for
// EachArc's locking and ArcInfo lookups on every pass.
type arcEndpoints struct {
	src, tgt graph.NodeID
	w        float64
}

func flattenArcs[N, A any](g *graph.Graph[N, A], weight Weight[A]) ([]arcEndpoints, error) {
	var arcs []arcEndpoints
	var err error
	g.EachArc(func(a graph.ArcID) bool {
		src, serr := g.Src(a)
		tgt, terr := g.Tgt(a)
		info, ierr := g.ArcInfo(a)
		if serr != nil || terr != nil || ierr != nil {
			err = fmt.Errorf("shortestpath: flattenArcs: arc %d: inconsistent state", a)

			return false
		}
		arcs = append(arcs, arcEndpoints{src: src, tgt: tgt, w: weight(info)})
		if !g.IsDirected() && src != tgt {
			arcs = append(arcs, arcEndpoints{src: tgt, tgt: src, w: weight(info)})
		}

		return true
	})

	return arcs, err
}

// BellmanFord computes shortest distances from source to every node
// reachable in g, tolerating negative weights. It returns ErrNegativeCycle
// if a negative-weight cycle is reachable from source, in which case dist
// and prev reflect the state before the offending cycle was detected and
// should not be trusted for nodes on or downstream of that cycle.
//
// Complexity: O(num nodes * num arcs).
func BellmanFord[N, A any](g *graph.Graph[N, A], source graph.NodeID, weight Weight[A]) (map[graph.NodeID]float64, map[graph.NodeID]graph.NodeID, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if _, err := g.NodeInfo(source); err != nil {
		return nil, nil, fmt.Errorf("shortestpath: BellmanFord: %w", ErrSourceNotFound)
	}

	arcs, err := flattenArcs(g, weight)
	if err != nil {
		return nil, nil, err
	}

	dist := make(map[graph.NodeID]float64)
	prev := make(map[graph.NodeID]graph.NodeID)
	dist[source] = 0

	numNodes := g.NumNodes()
	for i := 0; i < numNodes-1; i++ {
		changed := false
		for _, e := range arcs {
			du, ok := dist[e.src]
			if !ok {
				continue
			}
			nd := du + e.w
			if cur, ok := dist[e.tgt]; !ok || nd < cur {
				dist[e.tgt] = nd
				prev[e.tgt] = e.src
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	for _, e := range arcs {
		du, ok := dist[e.src]
		if !ok {
			continue
		}
		if nd := du + e.w; nd < dist[e.tgt] {
			return dist, prev, ErrNegativeCycle
		}
	}

	return dist, prev, nil
}
