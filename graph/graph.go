package graph

import (
	"fmt"
	"sync"
)

type nodeRec[N any] struct {
	info    N
	bits    Bits
	counter int64
	cookie  any
	adj     incidentArcs
}

type arcRec[A any] struct {
	info    A
	src     NodeID
	tgt     NodeID
	bits    Bits
	counter int64
	cookie  any
}

// Graph is a storage-agnostic graph or digraph over node payload type N
// and arc payload type A. muNodes guards nodes/nextNodeID,
// muArcs guards arcs/nextArcID and every node's adjacency set — a
// two-lock split for vertices vs. edges (see DESIGN.md).
//
// Zero value is not usable; construct with NewGraph or NewDigraph.
type Graph[N, A any] struct {
	muNodes sync.RWMutex
	muArcs  sync.RWMutex

	directed   bool
	backend    Backend
	allowLoops bool

	nextNodeID NodeID
	nextArcID  ArcID
	nodes      map[NodeID]*nodeRec[N]
	arcs       map[ArcID]*arcRec[A]
}

// GraphOption configures a Graph at construction time.
type GraphOption[N, A any] func(*Graph[N, A])

// WithLoops permits self-loop arcs (u == v). Default: disallowed.
func WithLoops[N, A any](allow bool) GraphOption[N, A] {
	return func(g *Graph[N, A]) { g.allowLoops = allow }
}

// NewGraph creates an empty undirected Graph using the given adjacency
// back-end. Complexity: O(1).
func NewGraph[N, A any](backend Backend, opts ...GraphOption[N, A]) *Graph[N, A] {
	g := &Graph[N, A]{
		backend: backend,
		nodes:   make(map[NodeID]*nodeRec[N]),
		arcs:    make(map[ArcID]*arcRec[A]),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDigraph creates an empty directed Graph using the given adjacency
// back-end. Complexity: O(1).
func NewDigraph[N, A any](backend Backend, opts ...GraphOption[N, A]) *Graph[N, A] {
	g := NewGraph[N, A](backend, opts...)
	g.directed = true

	return g
}

// IsDirected reports whether the graph is a digraph. Complexity: O(1).
func (g *Graph[N, A]) IsDirected() bool { return g.directed }

// InsertNode adds a node carrying info and returns its ID.
// Complexity: O(1).
func (g *Graph[N, A]) InsertNode(info N) NodeID {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	id := g.nextNodeID
	g.nextNodeID++
	g.nodes[id] = &nodeRec[N]{info: info, adj: newIncidentArcs(g.backend)}

	return id
}

// NodeInfo returns the payload stored for id.
// Complexity: O(1).
func (g *Graph[N, A]) NodeInfo(id NodeID) (N, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		var zero N

		return zero, fmt.Errorf("graph: NodeInfo(%d): %w", id, ErrNodeNotFound)
	}

	return n.info, nil
}

// SetNodeInfo overwrites the payload stored for id.
// Complexity: O(1).
func (g *Graph[N, A]) SetNodeInfo(id NodeID, info N) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("graph: SetNodeInfo(%d): %w", id, ErrNodeNotFound)
	}
	n.info = info

	return nil
}

// RemoveNode deletes id and every arc incident to it.
// Complexity: O(degree(id)).
func (g *Graph[N, A]) RemoveNode(id NodeID) error {
	g.muNodes.Lock()
	defer g.muNodes.Unlock()
	g.muArcs.Lock()
	defer g.muArcs.Unlock()

	n, ok := g.nodes[id]
	if !ok {
		return fmt.Errorf("graph: RemoveNode(%d): %w", id, ErrNodeNotFound)
	}
	var incident []ArcID
	n.adj.each(func(a ArcID) bool {
		incident = append(incident, a)

		return true
	})
	for _, a := range incident {
		g.removeArcLocked(a)
	}
	delete(g.nodes, id)

	return nil
}

// NumNodes returns the number of live nodes. Complexity: O(1).
func (g *Graph[N, A]) NumNodes() int {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	return len(g.nodes)
}

// EachNode calls fn for every node ID, stopping early if fn returns
// false. Iteration order is unspecified. Complexity: O(num nodes).
func (g *Graph[N, A]) EachNode(fn func(NodeID) bool) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	for id := range g.nodes {
		if !fn(id) {
			return
		}
	}
}

// EachAdjacentArc calls fn for every arc incident to id (outgoing only
// for a digraph, both directions' insertion point for a graph), stopping
// early if fn returns false. Complexity: O(degree(id)).
func (g *Graph[N, A]) EachAdjacentArc(id NodeID, fn func(ArcID) bool) error {
	g.muNodes.RLock()
	n, ok := g.nodes[id]
	g.muNodes.RUnlock()
	if !ok {
		return fmt.Errorf("graph: EachAdjacentArc(%d): %w", id, ErrNodeNotFound)
	}
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()
	n.adj.each(fn)

	return nil
}

// Degree returns the number of arcs incident to id.
// Complexity: O(1).
func (g *Graph[N, A]) Degree(id NodeID) (int, error) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return 0, fmt.Errorf("graph: Degree(%d): %w", id, ErrNodeNotFound)
	}

	return n.adj.len(), nil
}

// InsertArc adds an arc u->v (graph: also v->u's adjacency entry)
// carrying info, and returns its ID. Complexity: O(1).
func (g *Graph[N, A]) InsertArc(u, v NodeID, info A) (ArcID, error) {
	g.muNodes.RLock()
	un, uok := g.nodes[u]
	vn, vok := g.nodes[v]
	g.muNodes.RUnlock()
	if !uok {
		return 0, fmt.Errorf("graph: InsertArc: source %d: %w", u, ErrNodeNotFound)
	}
	if !vok {
		return 0, fmt.Errorf("graph: InsertArc: target %d: %w", v, ErrNodeNotFound)
	}
	if u == v && !g.allowLoops {
		return 0, fmt.Errorf("graph: InsertArc(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}

	g.muArcs.Lock()
	defer g.muArcs.Unlock()

	id := g.nextArcID
	g.nextArcID++
	g.arcs[id] = &arcRec[A]{info: info, src: u, tgt: v}
	un.adj.add(id)
	if !g.directed && u != v {
		vn.adj.add(id)
	}

	return id, nil
}

// RemoveArc deletes id. Complexity: O(degree(src) + degree(tgt)) for the
// singly-linked/packed back-ends, O(1) for the doubly-linked back-end.
func (g *Graph[N, A]) RemoveArc(id ArcID) error {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muArcs.Lock()
	defer g.muArcs.Unlock()

	if _, ok := g.arcs[id]; !ok {
		return fmt.Errorf("graph: RemoveArc(%d): %w", id, ErrArcNotFound)
	}
	g.removeArcLocked(id)

	return nil
}

// removeArcLocked requires muNodes and muArcs already held.
func (g *Graph[N, A]) removeArcLocked(id ArcID) {
	a := g.arcs[id]
	if srcNode, ok := g.nodes[a.src]; ok {
		srcNode.adj.remove(id)
	}
	if !g.directed && a.src != a.tgt {
		if tgtNode, ok := g.nodes[a.tgt]; ok {
			tgtNode.adj.remove(id)
		}
	}
	delete(g.arcs, id)
}

// NumArcs returns the number of live arcs. Complexity: O(1).
func (g *Graph[N, A]) NumArcs() int {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	return len(g.arcs)
}

// EachArc calls fn for every arc ID, stopping early if fn returns false.
// Iteration order is unspecified. Complexity: O(num arcs).
func (g *Graph[N, A]) EachArc(fn func(ArcID) bool) {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	for id := range g.arcs {
		if !fn(id) {
			return
		}
	}
}

// ArcInfo returns the payload stored for id. Complexity: O(1).
func (g *Graph[N, A]) ArcInfo(id ArcID) (A, error) {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	a, ok := g.arcs[id]
	if !ok {
		var zero A

		return zero, fmt.Errorf("graph: ArcInfo(%d): %w", id, ErrArcNotFound)
	}

	return a.info, nil
}

// Src returns the source endpoint of id. Complexity: O(1).
func (g *Graph[N, A]) Src(id ArcID) (NodeID, error) {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	a, ok := g.arcs[id]
	if !ok {
		return 0, fmt.Errorf("graph: Src(%d): %w", id, ErrArcNotFound)
	}

	return a.src, nil
}

// Tgt returns the target endpoint of id. Complexity: O(1).
func (g *Graph[N, A]) Tgt(id ArcID) (NodeID, error) {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	a, ok := g.arcs[id]
	if !ok {
		return 0, fmt.Errorf("graph: Tgt(%d): %w", id, ErrArcNotFound)
	}

	return a.tgt, nil
}

// OtherEndpoint returns the endpoint of id that is not v, for an
// undirected graph. Complexity: O(1).
func (g *Graph[N, A]) OtherEndpoint(id ArcID, v NodeID) (NodeID, error) {
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	a, ok := g.arcs[id]
	if !ok {
		return 0, fmt.Errorf("graph: OtherEndpoint(%d): %w", id, ErrArcNotFound)
	}
	switch v {
	case a.src:
		return a.tgt, nil
	case a.tgt:
		return a.src, nil
	default:
		return 0, fmt.Errorf("graph: OtherEndpoint(%d, %d): %w", id, v, ErrEndpointNotIncident)
	}
}

// FindArc returns the first arc from u to v, if one exists.
// Complexity: O(degree(u)).
func (g *Graph[N, A]) FindArc(u, v NodeID) (ArcID, bool) {
	g.muNodes.RLock()
	un, ok := g.nodes[u]
	g.muNodes.RUnlock()
	if !ok {
		return 0, false
	}

	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	var found ArcID
	var ok2 bool
	un.adj.each(func(id ArcID) bool {
		a := g.arcs[id]
		if a.tgt == v || (!g.directed && a.src == v) {
			found, ok2 = id, true

			return false
		}

		return true
	})

	return found, ok2
}
