package mst

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/pqueue"
	"github.com/lrleon/alephw/shortestpath"
)

// frontierArc is a candidate crossing arc considered by Prim's
// lazy-decrease-key frontier: an arc may be pushed more than once, with
// only the cheapest surviving entry ever accepted.
type frontierArc struct {
	id   graph.ArcID
	tgt  graph.NodeID
	cost float64
}

// Prim computes a minimum spanning tree of g by growing outward from
// root, repeatedly extracting the cheapest crossing arc to an
// unvisited node from a binary-heap frontier. g must be undirected.
//
// Returns ErrDisconnected if some node of g is not reachable from root
// (fewer than numNodes-1 arcs can be accepted).
//
// Complexity: O((num nodes + num arcs) log num nodes).
func Prim[N, A any](g *graph.Graph[N, A], root graph.NodeID, weight shortestpath.Weight[A]) ([]graph.ArcID, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.IsDirected() {
		return nil, 0, ErrDirectedGraph
	}
	if _, err := g.NodeInfo(root); err != nil {
		return nil, 0, fmt.Errorf("mst: Prim: %w", ErrRootNotFound)
	}

	var ids []graph.NodeID
	g.EachNode(func(id graph.NodeID) bool {
		ids = append(ids, id)

		return true
	})
	if len(ids) <= 1 {
		return []graph.ArcID{}, 0, nil
	}

	less := func(a, b frontierArc) bool { return a.cost < b.cost }
	pq := pqueue.NewBinaryHeap(less)

	visited := make(map[graph.NodeID]bool, len(ids))
	pushFrontier := func(u graph.NodeID) error {
		return g.EachAdjacentArc(u, func(a graph.ArcID) bool {
			v, err := g.OtherEndpoint(a, u)
			if err != nil || visited[v] {
				return true
			}
			info, err := g.ArcInfo(a)
			if err != nil {
				return true
			}
			pq.Push(frontierArc{id: a, tgt: v, cost: weight(info)})

			return true
		})
	}

	visited[root] = true
	if err := pushFrontier(root); err != nil {
		return nil, 0, fmt.Errorf("mst: Prim: %w", err)
	}

	var mstArcs []graph.ArcID
	var total float64
	for !pq.IsEmpty() && len(mstArcs) < len(ids)-1 {
		item, _ := pq.Pop()
		if visited[item.tgt] {
			continue
		}
		visited[item.tgt] = true
		mstArcs = append(mstArcs, item.id)
		total += item.cost
		if err := pushFrontier(item.tgt); err != nil {
			return nil, 0, fmt.Errorf("mst: Prim: %w", err)
		}
	}

	if len(mstArcs) < len(ids)-1 {
		return nil, 0, fmt.Errorf("mst: Prim: %w", ErrDisconnected)
	}

	return mstArcs, total, nil
}
