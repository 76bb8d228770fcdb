package mst

import (
	"fmt"
	"sort"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/shortestpath"
)

// disjointSet is a union-find over graph.NodeID with union-by-rank and
// path compression, shared by Kruskal's cycle test.
type disjointSet struct {
	parent map[graph.NodeID]graph.NodeID
	rank   map[graph.NodeID]int
}

func newDisjointSet(ids []graph.NodeID) *disjointSet {
	ds := &disjointSet{
		parent: make(map[graph.NodeID]graph.NodeID, len(ids)),
		rank:   make(map[graph.NodeID]int, len(ids)),
	}
	for _, id := range ids {
		ds.parent[id] = id
	}

	return ds
}

func (ds *disjointSet) find(u graph.NodeID) graph.NodeID {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

func (ds *disjointSet) union(u, v graph.NodeID) {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return
	}
	if ds.rank[ru] < ds.rank[rv] {
		ds.parent[ru] = rv
	} else {
		ds.parent[rv] = ru
		if ds.rank[ru] == ds.rank[rv] {
			ds.rank[ru]++
		}
	}
}

type weightedArc struct {
	id   graph.ArcID
	u, v graph.NodeID
	w    float64
}

// Kruskal computes a minimum spanning tree of g by sorting arcs
// ascending by weight and accepting each one whose endpoints are still
// in different components, via a union-find with union-by-rank and
// path compression. g must be undirected.
//
// Returns ErrDisconnected if g has fewer than numNodes-1 acceptable
// arcs (no spanning tree exists).
//
// Complexity: O(num arcs log num arcs + num arcs * alpha(num nodes)).
func Kruskal[N, A any](g *graph.Graph[N, A], weight shortestpath.Weight[A]) ([]graph.ArcID, float64, error) {
	if g == nil {
		return nil, 0, ErrGraphNil
	}
	if g.IsDirected() {
		return nil, 0, ErrDirectedGraph
	}

	var ids []graph.NodeID
	g.EachNode(func(id graph.NodeID) bool {
		ids = append(ids, id)

		return true
	})
	if len(ids) <= 1 {
		return []graph.ArcID{}, 0, nil
	}

	var arcs []weightedArc
	g.EachArc(func(a graph.ArcID) bool {
		u, uerr := g.Src(a)
		v, verr := g.Tgt(a)
		if uerr != nil || verr != nil || u == v {
			return true // self-loops cannot belong to a spanning tree
		}
		info, ierr := g.ArcInfo(a)
		if ierr != nil {
			return true
		}
		arcs = append(arcs, weightedArc{id: a, u: u, v: v, w: weight(info)})

		return true
	})
	sort.SliceStable(arcs, func(i, j int) bool { return arcs[i].w < arcs[j].w })

	ds := newDisjointSet(ids)
	var mst []graph.ArcID
	var total float64
	for _, e := range arcs {
		if ds.find(e.u) == ds.find(e.v) {
			continue
		}
		ds.union(e.u, e.v)
		mst = append(mst, e.id)
		total += e.w
		if len(mst) == len(ids)-1 {
			break
		}
	}

	if len(mst) < len(ids)-1 {
		return nil, 0, fmt.Errorf("mst: Kruskal: %w", ErrDisconnected)
	}

	return mst, total, nil
}
