package graph

import (
	"encoding/gob"
	"fmt"
	"io"
)

// wireArc is the on-wire shape of one arc: its endpoints (by the
// position of their node in the node list, not by NodeID, since IDs are
// not guaranteed stable across a write/read round trip) and its info
// payload.
type wireArc[A any] struct {
	SrcIndex int
	TgtIndex int
	Info     A
}

// WriteGraph encodes g as a directed flag followed by num_nodes, [info]*,
// num_arcs, [(src_index,tgt_index,info)]*, gob-encoding the N and A
// payloads. Node order is the iteration order at encode time; ReadGraph
// reconstructs NodeIDs by position, not value.
func WriteGraph[N, A any](w io.Writer, g *Graph[N, A]) error {
	enc := gob.NewEncoder(w)

	index := make(map[NodeID]int, len(g.nodes))
	nodeInfos := make([]N, 0, len(g.nodes))
	g.muNodes.RLock()
	for id, rec := range g.nodes {
		index[id] = len(nodeInfos)
		nodeInfos = append(nodeInfos, rec.info)
	}
	g.muNodes.RUnlock()

	if err := enc.Encode(g.directed); err != nil {
		return fmt.Errorf("graph: WriteGraph: directed flag: %w", err)
	}
	if err := enc.Encode(len(nodeInfos)); err != nil {
		return fmt.Errorf("graph: WriteGraph: num_nodes: %w", err)
	}
	for _, info := range nodeInfos {
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("graph: WriteGraph: node info: %w", err)
		}
	}

	g.muArcs.RLock()
	arcs := make([]wireArc[A], 0, len(g.arcs))
	for _, rec := range g.arcs {
		arcs = append(arcs, wireArc[A]{SrcIndex: index[rec.src], TgtIndex: index[rec.tgt], Info: rec.info})
	}
	g.muArcs.RUnlock()

	if err := enc.Encode(len(arcs)); err != nil {
		return fmt.Errorf("graph: WriteGraph: num_arcs: %w", err)
	}
	for _, a := range arcs {
		if err := enc.Encode(a); err != nil {
			return fmt.Errorf("graph: WriteGraph: arc: %w", err)
		}
	}

	return nil
}

// ReadGraph decodes a graph written by WriteGraph, using backend for the
// reconstructed Graph's adjacency storage.
func ReadGraph[N, A any](r io.Reader, backend Backend) (*Graph[N, A], error) {
	dec := gob.NewDecoder(r)

	var directed bool
	if err := dec.Decode(&directed); err != nil {
		return nil, fmt.Errorf("graph: ReadGraph: directed flag: %w", err)
	}

	var numNodes int
	if err := dec.Decode(&numNodes); err != nil {
		return nil, fmt.Errorf("graph: ReadGraph: num_nodes: %w", err)
	}

	var g *Graph[N, A]
	if directed {
		g = NewDigraph[N, A](backend)
	} else {
		g = NewGraph[N, A](backend)
	}

	ids := make([]NodeID, 0, numNodes)
	for i := 0; i < numNodes; i++ {
		var info N
		if err := dec.Decode(&info); err != nil {
			return nil, fmt.Errorf("graph: ReadGraph: node info %d: %w", i, err)
		}
		ids = append(ids, g.InsertNode(info))
	}

	var numArcs int
	if err := dec.Decode(&numArcs); err != nil {
		return nil, fmt.Errorf("graph: ReadGraph: num_arcs: %w", err)
	}
	for i := 0; i < numArcs; i++ {
		var a wireArc[A]
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("graph: ReadGraph: arc %d: %w", i, err)
		}
		if a.SrcIndex < 0 || a.SrcIndex >= len(ids) || a.TgtIndex < 0 || a.TgtIndex >= len(ids) {
			return nil, fmt.Errorf("graph: ReadGraph: arc %d: endpoint index out of range", i)
		}
		if _, err := g.InsertArc(ids[a.SrcIndex], ids[a.TgtIndex], a.Info); err != nil {
			return nil, fmt.Errorf("graph: ReadGraph: arc %d: %w", i, err)
		}
	}

	return g, nil
}
