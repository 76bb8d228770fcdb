package traversal

import "errors"

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS or BFS.
	ErrGraphNil = errors.New("traversal: graph is nil")

	// ErrStartNodeNotFound indicates the requested start node does not exist.
	ErrStartNodeNotFound = errors.New("traversal: start node not found")
)
