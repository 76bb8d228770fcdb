package maxflow

import "errors"

// Sentinel errors for maxflow.
var (
	ErrGraphNil         = errors.New("maxflow: graph is nil")
	ErrSourceNotFound   = errors.New("maxflow: source node not found")
	ErrSinkNotFound     = errors.New("maxflow: sink node not found")
	ErrSourceEqualsSink = errors.New("maxflow: source and sink must differ")
	ErrNegativeCapacity = errors.New("maxflow: negative arc capacity encountered")
)
