package shortestpath

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/pqueue"
)

// distItem pairs a node with its tentative priority, for the heap's
// lazy-decrease-key frontier: a node may be pushed more than once, with
// only the smallest surviving entry ever relaxed.
type distItem struct {
	node     graph.NodeID
	priority float64
}

// Dijkstra computes shortest distances from source to every node
// reachable in g, using weight to read each arc's cost. With
// WithHeuristic it runs as A*: the heuristic must never overestimate
// the true remaining distance to remain optimal. All arc weights seen
// must be non-negative (negative weights are rejected by a pre-scan).
//
// Returns dist (absent for unreached nodes) and prev, mapping each
// reached node to its predecessor on the shortest path found.
//
// Complexity: O((num nodes + num arcs) log num nodes).
func Dijkstra[N, A any](g *graph.Graph[N, A], source graph.NodeID, weight Weight[A], opts ...Option) (map[graph.NodeID]float64, map[graph.NodeID]graph.NodeID, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}
	if _, err := g.NodeInfo(source); err != nil {
		return nil, nil, fmt.Errorf("shortestpath: Dijkstra: %w", ErrSourceNotFound)
	}

	var scanErr error
	g.EachArc(func(a graph.ArcID) bool {
		info, err := g.ArcInfo(a)
		if err != nil {
			return true
		}
		if weight(info) < 0 {
			scanErr = fmt.Errorf("shortestpath: Dijkstra: arc %d: %w", a, ErrNegativeWeight)

			return false
		}

		return true
	})
	if scanErr != nil {
		return nil, nil, scanErr
	}

	arcWeight := func(a graph.ArcID) (float64, error) {
		info, err := g.ArcInfo(a)
		if err != nil {
			return 0, err
		}

		return weight(info), nil
	}

	return dijkstraCore(g, source, arcWeight, opts...)
}

// dijkstraCore is the heap-driven relaxation loop shared by Dijkstra and
// Johnson's per-source fan-out; arcWeight is already resolved to a plain
// numeric cost so Johnson can substitute its reweighted potential
// without threading that through the public Weight[A] signature.
func dijkstraCore[N, A any](g *graph.Graph[N, A], source graph.NodeID, arcWeight func(graph.ArcID) (float64, error), opts ...Option) (map[graph.NodeID]float64, map[graph.NodeID]graph.NodeID, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dist := make(map[graph.NodeID]float64)
	prev := make(map[graph.NodeID]graph.NodeID)
	visited := make(map[graph.NodeID]bool)

	priority := func(n graph.NodeID) float64 {
		if cfg.Heuristic == nil {
			return dist[n]
		}

		return dist[n] + cfg.Heuristic(int64(n))
	}

	less := func(a, b distItem) bool { return a.priority < b.priority }
	pq := pqueue.NewBinaryHeap(less)

	dist[source] = 0
	pq.Push(distItem{node: source, priority: priority(source)})

	for !pq.IsEmpty() {
		item, _ := pq.Pop()
		u := item.node
		if visited[u] {
			continue
		}
		d, ok := dist[u]
		if !ok || d > cfg.MaxDistance {
			continue
		}
		visited[u] = true

		err := g.EachAdjacentArc(u, func(a graph.ArcID) bool {
			src, serr := g.Src(a)
			if serr == nil && g.IsDirected() && src != u {
				return true
			}
			v, oerr := g.OtherEndpoint(a, u)
			if oerr != nil {
				return true
			}
			w, werr := arcWeight(a)
			if werr != nil {
				return true
			}
			nd := d + w
			if nd > cfg.MaxDistance {
				return true
			}
			if cur, ok := dist[v]; ok && nd >= cur {
				return true
			}
			dist[v] = nd
			prev[v] = u
			pq.Push(distItem{node: v, priority: priority(v)})

			return true
		})
		if err != nil {
			return nil, nil, fmt.Errorf("shortestpath: dijkstraCore: %w", err)
		}
	}

	return dist, prev, nil
}
