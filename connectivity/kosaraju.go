package connectivity

import "github.com/lrleon/alephw/graph"

// KosarajuSCC computes the same partition as TarjanSCC via the classic
// two-pass algorithm: a DFS recording finish order, then a second DFS
// over the transposed adjacency in reverse finish order. Kept alongside
// TarjanSCC so the two can be cross-checked against each other (both
// algorithms must produce the same set partition, though not necessarily
// the same component order).
//
// Complexity: O(num nodes + num arcs).
func KosarajuSCC[N, A any](g *graph.Graph[N, A]) ([][]graph.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	fwd := make(map[graph.NodeID][]graph.NodeID)
	rev := make(map[graph.NodeID][]graph.NodeID)
	g.EachArc(func(a graph.ArcID) bool {
		src, _ := g.Src(a)
		tgt, _ := g.Tgt(a)
		fwd[src] = append(fwd[src], tgt)
		rev[tgt] = append(rev[tgt], src)

		return true
	})

	visited := make(map[graph.NodeID]bool)
	var finishOrder []graph.NodeID

	var dfs1 func(n graph.NodeID)
	dfs1 = func(n graph.NodeID) {
		visited[n] = true
		for _, w := range fwd[n] {
			if !visited[w] {
				dfs1(w)
			}
		}
		finishOrder = append(finishOrder, n)
	}

	g.EachNode(func(id graph.NodeID) bool {
		if !visited[id] {
			dfs1(id)
		}

		return true
	})

	assigned := make(map[graph.NodeID]bool)
	var result [][]graph.NodeID

	var dfs2 func(n graph.NodeID, comp *[]graph.NodeID)
	dfs2 = func(n graph.NodeID, comp *[]graph.NodeID) {
		assigned[n] = true
		*comp = append(*comp, n)
		for _, w := range rev[n] {
			if !assigned[w] {
				dfs2(w, comp)
			}
		}
	}

	for i := len(finishOrder) - 1; i >= 0; i-- {
		n := finishOrder[i]
		if assigned[n] {
			continue
		}
		var comp []graph.NodeID
		dfs2(n, &comp)
		result = append(result, comp)
	}

	return result, nil
}
