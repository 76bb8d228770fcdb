package apsp

import "errors"

// Sentinel errors for apsp.
var (
	ErrGraphNil      = errors.New("apsp: graph is nil")
	ErrNegativeCycle = errors.New("apsp: negative-weight cycle detected")
)
