package connectivity

import "errors"

// ErrGraphNil is returned when a nil *graph.Graph is passed in.
var ErrGraphNil = errors.New("connectivity: graph is nil")
