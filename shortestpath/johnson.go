package shortestpath

import (
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/lrleon/alephw/graph"
)

// bellmanFordFromAll runs a multi-source Bellman-Ford with every node's
// initial distance pinned at 0, equivalent to adding a virtual source
// joined to every node by a zero-weight arc without mutating g — exactly
// Johnson's reweighting potential h(v).
func bellmanFordFromAll[N, A any](g *graph.Graph[N, A], weight Weight[A]) (map[graph.NodeID]float64, error) {
	arcs, err := flattenArcs(g, weight)
	if err != nil {
		return nil, err
	}

	h := make(map[graph.NodeID]float64)
	g.EachNode(func(id graph.NodeID) bool {
		h[id] = 0

		return true
	})

	numNodes := g.NumNodes()
	for i := 0; i < numNodes-1; i++ {
		changed := false
		for _, e := range arcs {
			if nd := h[e.src] + e.w; nd < h[e.tgt] {
				h[e.tgt] = nd
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	for _, e := range arcs {
		if h[e.src]+e.w < h[e.tgt] {
			return nil, ErrNegativeCycle
		}
	}

	return h, nil
}

// Johnson computes all-pairs shortest distances over g, tolerating
// negative weights (so long as no negative-weight cycle is reachable),
// by reweighting every arc to be non-negative via a Bellman-Ford
// potential h and then fanning one Dijkstra run per source node out
// across golang.org/x/sync/errgroup, bounded by GOMAXPROCS.
//
// Returns dist[u][v]: the shortest distance from u to v, absent if v is
// unreachable from u.
//
// Complexity: O(num nodes * num arcs) for reweighting, plus
// O(num nodes * (num nodes + num arcs) log num nodes) for the Dijkstra fan-out.
func Johnson[N, A any](g *graph.Graph[N, A], weight Weight[A]) (map[graph.NodeID]map[graph.NodeID]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.IsDirected() {
		// An undirected arc's reweighted cost w(u,v)+h(u)-h(v) depends on
		// which endpoint it is traversed from, so a single stored value per
		// arc cannot serve both directions; Johnson is defined here only
		// for digraphs. (An undirected negative-weight edge is degenerate
		// anyway: walking it back and forth is itself a negative cycle.)
		return nil, fmt.Errorf("shortestpath: Johnson: %w", ErrUndirectedRequired)
	}

	h, err := bellmanFordFromAll(g, weight)
	if err != nil {
		return nil, fmt.Errorf("shortestpath: Johnson: %w", err)
	}

	// Reweighted cost of each arc: w'(u,v) = w(u,v) + h(u) - h(v) >= 0.
	reweighted := make(map[graph.ArcID]float64)
	g.EachArc(func(a graph.ArcID) bool {
		src, _ := g.Src(a)
		tgt, _ := g.Tgt(a)
		info, err := g.ArcInfo(a)
		if err != nil {
			return true
		}
		reweighted[a] = weight(info) + h[src] - h[tgt]

		return true
	})
	arcWeight := func(a graph.ArcID) (float64, error) {
		// Every live arc was visited above, so a miss means a has been
		// removed from g concurrently with this call.
		w, ok := reweighted[a]
		if !ok {
			return 0, fmt.Errorf("shortestpath: Johnson: arc %d vanished mid-computation", a)
		}

		return w, nil
	}

	var sources []graph.NodeID
	g.EachNode(func(id graph.NodeID) bool {
		sources = append(sources, id)

		return true
	})

	result := make(map[graph.NodeID]map[graph.NodeID]float64, len(sources))
	var mu sync.Mutex

	grp := new(errgroup.Group)
	grp.SetLimit(runtime.GOMAXPROCS(0))
	for _, s := range sources {
		grp.Go(func() error {
			reweightedDist, _, derr := dijkstraCore(g, s, arcWeight)
			if derr != nil {
				return derr
			}

			dist := make(map[graph.NodeID]float64, len(reweightedDist))
			for v, rd := range reweightedDist {
				dist[v] = rd - h[s] + h[v]
			}

			mu.Lock()
			result[s] = dist
			mu.Unlock()

			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("shortestpath: Johnson: %w", err)
	}

	return result, nil
}
