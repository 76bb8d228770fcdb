package connectivity

import "github.com/lrleon/alephw/graph"

// cutState carries the low-link DFS bookkeeping shared by CutVertices and
// Blocks (they are computed together; Blocks is the by-product of the
// articulation-point DFS's arc stack, mirroring Compute_Cut_Nodes
// painting subgraphs from the same walk).
type cutState[N, A any] struct {
	g             *graph.Graph[N, A]
	disc          map[graph.NodeID]int
	low           map[graph.NodeID]int
	parent        map[graph.NodeID]graph.NodeID
	hasParent     map[graph.NodeID]bool
	parentArcDone map[graph.NodeID]bool
	time          int
	cuts          map[graph.NodeID]bool
	arcStack      []graph.ArcID
	blocks        [][]graph.ArcID
}

// CutVertices returns the articulation points of the undirected graph
// reachable from start: nodes whose removal increases the number of
// connected components of that reachable subgraph. A root of the DFS
// tree is a cut vertex iff it has more than one child in the DFS tree; a
// non-root node v is a cut vertex iff it has a child w with
// low[w] >= disc[v].
//
// Complexity: O(num nodes + num arcs) over the component containing start.
func CutVertices[N, A any](g *graph.Graph[N, A], start graph.NodeID) ([]graph.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.NodeInfo(start); err != nil {
		return nil, err
	}

	st := newCutState(g)
	st.visit(start, true)

	cuts := make([]graph.NodeID, 0, len(st.cuts))
	for n := range st.cuts {
		cuts = append(cuts, n)
	}

	return cuts, nil
}

// Blocks returns the biconnected components (maximal subgraphs with no
// cut vertex) of the graph reachable from start, each as the set of arcs
// it contains.
//
// Complexity: O(num nodes + num arcs) over the component containing start.
func Blocks[N, A any](g *graph.Graph[N, A], start graph.NodeID) ([][]graph.ArcID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if _, err := g.NodeInfo(start); err != nil {
		return nil, err
	}

	st := newCutState(g)
	st.visit(start, true)
	if len(st.arcStack) > 0 {
		st.flushBlock()
	}

	return st.blocks, nil
}

func newCutState[N, A any](g *graph.Graph[N, A]) *cutState[N, A] {
	return &cutState[N, A]{
		g:         g,
		disc:      make(map[graph.NodeID]int),
		low:       make(map[graph.NodeID]int),
		parent:    make(map[graph.NodeID]graph.NodeID),
		hasParent: make(map[graph.NodeID]bool),
		cuts:      make(map[graph.NodeID]bool),
	}
}

func (st *cutState[N, A]) visit(v graph.NodeID, isRoot bool) {
	st.disc[v] = st.time
	st.low[v] = st.time
	st.time++
	children := 0

	_ = st.g.EachAdjacentArc(v, func(a graph.ArcID) bool {
		w, err := st.g.OtherEndpoint(a, v)
		if err != nil {
			return true
		}
		if st.hasParent[v] && w == st.parent[v] && !st.consumedParentArc(v, a) {
			st.markParentArcConsumed(v)

			return true
		}

		if _, seen := st.disc[w]; !seen {
			children++
			st.parent[w] = v
			st.hasParent[w] = true
			st.arcStack = append(st.arcStack, a)
			st.visit(w, false)

			if st.low[w] < st.low[v] {
				st.low[v] = st.low[w]
			}
			if (isRoot && children > 1) || (!isRoot && st.low[w] >= st.disc[v]) {
				st.cuts[v] = true
			}
			if st.low[w] >= st.disc[v] {
				st.popBlockUpTo(a)
			}
		} else if st.disc[w] < st.disc[v] {
			st.arcStack = append(st.arcStack, a)
			if st.disc[w] < st.low[v] {
				st.low[v] = st.disc[w]
			}
		}

		return true
	})
}

// popBlockUpTo pops arcs off the stack through and including boundary,
// emitting them as one biconnected component.
func (st *cutState[N, A]) popBlockUpTo(boundary graph.ArcID) {
	var block []graph.ArcID
	for len(st.arcStack) > 0 {
		n := len(st.arcStack) - 1
		a := st.arcStack[n]
		st.arcStack = st.arcStack[:n]
		block = append(block, a)
		if a == boundary {
			break
		}
	}
	st.blocks = append(st.blocks, block)
}

func (st *cutState[N, A]) flushBlock() {
	st.blocks = append(st.blocks, append([]graph.ArcID(nil), st.arcStack...))
	st.arcStack = nil
}

// consumedParentArc/markParentArcConsumed guard against immediately
// walking back along the single tree arc to v's own parent (which, for
// an undirected graph stored with the arc in both endpoints'
// adjacency, would otherwise look like a back-edge to an already-seen
// node). Each node consumes exactly one such arc: the first one found
// equal to its parent. This assumes no parallel arcs between a node and
// its parent.
func (st *cutState[N, A]) consumedParentArc(v graph.NodeID, a graph.ArcID) bool {
	return st.parentArcDone[v]
}

func (st *cutState[N, A]) markParentArcConsumed(v graph.NodeID) {
	if st.parentArcDone == nil {
		st.parentArcDone = make(map[graph.NodeID]bool)
	}
	st.parentArcDone[v] = true
}
