package connectivity

import "github.com/lrleon/alephw/graph"

// tarjanState carries Tarjan's SCC algorithm's per-run bookkeeping.
type tarjanState[N, A any] struct {
	g       *graph.Graph[N, A]
	index   map[graph.NodeID]int
	lowlink map[graph.NodeID]int
	onStack map[graph.NodeID]bool
	stack   []graph.NodeID
	next    int
	result  [][]graph.NodeID
}

// TarjanSCC computes the strongly-connected components of a digraph in a
// single DFS pass using index/low-link numbering, returning each
// component as the set of nodes it contains. Component order is
// reverse-topological: every component appears after each component it
// has an arc into.
//
// Complexity: O(num nodes + num arcs).
func TarjanSCC[N, A any](g *graph.Graph[N, A]) ([][]graph.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	st := &tarjanState[N, A]{
		g:       g,
		index:   make(map[graph.NodeID]int),
		lowlink: make(map[graph.NodeID]int),
		onStack: make(map[graph.NodeID]bool),
	}

	g.EachNode(func(id graph.NodeID) bool {
		if _, ok := st.index[id]; !ok {
			st.strongConnect(id)
		}

		return true
	})

	return st.result, nil
}

func (st *tarjanState[N, A]) strongConnect(v graph.NodeID) {
	st.index[v] = st.next
	st.lowlink[v] = st.next
	st.next++
	st.stack = append(st.stack, v)
	st.onStack[v] = true

	_ = st.g.EachAdjacentArc(v, func(a graph.ArcID) bool {
		src, err := st.g.Src(a)
		if err != nil || src != v {
			return true // a digraph only lists outgoing arcs in v's adjacency anyway
		}
		w, err := st.g.Tgt(a)
		if err != nil {
			return true
		}

		if _, ok := st.index[w]; !ok {
			st.strongConnect(w)
			if st.lowlink[w] < st.lowlink[v] {
				st.lowlink[v] = st.lowlink[w]
			}
		} else if st.onStack[w] {
			if st.index[w] < st.lowlink[v] {
				st.lowlink[v] = st.index[w]
			}
		}

		return true
	})

	if st.lowlink[v] == st.index[v] {
		var comp []graph.NodeID
		for {
			n := len(st.stack) - 1
			w := st.stack[n]
			st.stack = st.stack[:n]
			st.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}
		st.result = append(st.result, comp)
	}
}
