package graph

// Clone returns a deep copy of g (new node/arc records, shared info
// values per Go's usual shallow-copy-of-interface semantics) along with
// the NodeMap/ArcMap recording the old-ID -> new-ID correspondence. Only
// that direction is recorded; there is no new-ID -> old-ID map.
//
// Complexity: O(num nodes + num arcs).
func (g *Graph[N, A]) Clone() (*Graph[N, A], NodeMap, ArcMap) {
	g.muNodes.RLock()
	defer g.muNodes.RUnlock()
	g.muArcs.RLock()
	defer g.muArcs.RUnlock()

	clone := NewGraph[N, A](g.backend)
	clone.directed = g.directed
	clone.allowLoops = g.allowLoops

	nodeMap := make(NodeMap, len(g.nodes))
	for oldID, rec := range g.nodes {
		newID := clone.InsertNode(rec.info)
		nodeMap[oldID] = newID
	}

	arcMap := make(ArcMap, len(g.arcs))
	for oldID, rec := range g.arcs {
		newSrc := nodeMap[rec.src]
		newTgt := nodeMap[rec.tgt]
		newID, _ := clone.InsertArc(newSrc, newTgt, rec.info)
		arcMap[oldID] = newID
	}

	return clone, nodeMap, arcMap
}
