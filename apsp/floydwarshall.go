package apsp

import (
	"math"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/shortestpath"
)

// indexing assigns each node a dense [0,n) row/column index, the layout
// FloydWarshall and TransitiveClosure both need for their flat matrices.
type indexing struct {
	ids   []graph.NodeID
	index map[graph.NodeID]int
}

func buildIndexing[N, A any](g *graph.Graph[N, A]) *indexing {
	idx := &indexing{index: make(map[graph.NodeID]int)}
	g.EachNode(func(id graph.NodeID) bool {
		idx.index[id] = len(idx.ids)
		idx.ids = append(idx.ids, id)

		return true
	})

	return idx
}

// FloydWarshall computes shortest distances between every pair of nodes
// in g, tolerating negative arc weights. dist[u][v] is absent when v is
// unreachable from u. next[u][v] is the first hop on a shortest u->v
// path (absent if u==v or v is unreachable), usable with Path to
// reconstruct the full route.
//
// Returns ErrNegativeCycle if any node can reach a negative-weight
// cycle back to itself.
//
// Complexity: O(num nodes^3) time, O(num nodes^2) space.
func FloydWarshall[N, A any](g *graph.Graph[N, A], weight shortestpath.Weight[A]) (map[graph.NodeID]map[graph.NodeID]float64, map[graph.NodeID]map[graph.NodeID]graph.NodeID, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	idx := buildIndexing(g)
	n := len(idx.ids)

	dist := make([]float64, n*n)
	next := make([]int, n*n)
	for i := range dist {
		dist[i] = math.Inf(1)
		next[i] = -1
	}
	for i := 0; i < n; i++ {
		dist[i*n+i] = 0
	}

	g.EachArc(func(a graph.ArcID) bool {
		src, serr := g.Src(a)
		tgt, terr := g.Tgt(a)
		info, ierr := g.ArcInfo(a)
		if serr != nil || terr != nil || ierr != nil {
			return true
		}
		u, v, w := idx.index[src], idx.index[tgt], weight(info)
		if w < dist[u*n+v] {
			dist[u*n+v] = w
			next[u*n+v] = v
		}
		if !g.IsDirected() && u != v && w < dist[v*n+u] {
			dist[v*n+u] = w
			next[v*n+u] = u
		}

		return true
	})

	// Fixed k -> i -> j loop order for deterministic accumulation.
	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if math.IsInf(ik, 1) {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				kj := dist[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				if cand := ik + kj; cand < dist[baseI+j] {
					dist[baseI+j] = cand
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist[i*n+i] < 0 {
			return nil, nil, ErrNegativeCycle
		}
	}

	distOut := make(map[graph.NodeID]map[graph.NodeID]float64, n)
	nextOut := make(map[graph.NodeID]map[graph.NodeID]graph.NodeID, n)
	for i, u := range idx.ids {
		row := make(map[graph.NodeID]float64)
		nrow := make(map[graph.NodeID]graph.NodeID)
		for j, v := range idx.ids {
			if d := dist[i*n+j]; !math.IsInf(d, 1) {
				row[v] = d
			}
			if h := next[i*n+j]; h >= 0 {
				nrow[v] = idx.ids[h]
			}
		}
		distOut[u] = row
		nextOut[u] = nrow
	}

	return distOut, nextOut, nil
}

// Path reconstructs the shortest from->to route found by FloydWarshall
// using its next-hop matrix. ok is false if to is unreachable from from.
func Path(next map[graph.NodeID]map[graph.NodeID]graph.NodeID, from, to graph.NodeID) ([]graph.NodeID, bool) {
	if from == to {
		return []graph.NodeID{from}, true
	}
	row, ok := next[from]
	if !ok {
		return nil, false
	}
	if _, ok := row[to]; !ok {
		return nil, false
	}

	path := []graph.NodeID{from}
	cur := from
	for cur != to {
		hop, ok := next[cur][to]
		if !ok {
			return nil, false
		}
		cur = hop
		path = append(path, cur)
	}

	return path, true
}
