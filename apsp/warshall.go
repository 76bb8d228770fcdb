package apsp

import "github.com/lrleon/alephw/graph"

// TransitiveClosure reports, for every pair of nodes (u,v), whether v is
// reachable from u by any path (weights are ignored entirely). Every
// node reaches itself.
//
// Complexity: O(num nodes^3) time, O(num nodes^2) space (bits).
func TransitiveClosure[N, A any](g *graph.Graph[N, A]) (map[graph.NodeID]map[graph.NodeID]bool, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	idx := buildIndexing(g)
	n := len(idx.ids)

	reach := make([]bool, n*n)
	for i := 0; i < n; i++ {
		reach[i*n+i] = true
	}

	g.EachArc(func(a graph.ArcID) bool {
		src, serr := g.Src(a)
		tgt, terr := g.Tgt(a)
		if serr != nil || terr != nil {
			return true
		}
		u, v := idx.index[src], idx.index[tgt]
		reach[u*n+v] = true
		if !g.IsDirected() {
			reach[v*n+u] = true
		}

		return true
	})

	for k := 0; k < n; k++ {
		baseK := k * n
		for i := 0; i < n; i++ {
			if !reach[i*n+k] {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ {
				if reach[baseK+j] {
					reach[baseI+j] = true
				}
			}
		}
	}

	out := make(map[graph.NodeID]map[graph.NodeID]bool, n)
	for i, u := range idx.ids {
		row := make(map[graph.NodeID]bool, n)
		for j, v := range idx.ids {
			row[v] = reach[i*n+j]
		}
		out[u] = row
	}

	return out, nil
}
