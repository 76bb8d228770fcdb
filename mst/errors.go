package mst

import "errors"

// Sentinel errors for mst.
var (
	ErrGraphNil      = errors.New("mst: graph is nil")
	ErrDirectedGraph = errors.New("mst: a spanning tree requires an undirected graph")
	ErrDisconnected  = errors.New("mst: graph has no spanning tree (disconnected)")
	ErrRootNotFound  = errors.New("mst: root node not found")
)
