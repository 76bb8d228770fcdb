package shortestpath

import (
	"errors"
	"math"
)

// Sentinel errors for shortestpath.
var (
	ErrGraphNil           = errors.New("shortestpath: graph is nil")
	ErrSourceNotFound     = errors.New("shortestpath: source node not found")
	ErrNegativeWeight     = errors.New("shortestpath: negative edge weight encountered")
	ErrNegativeCycle      = errors.New("shortestpath: negative-weight cycle reachable from source")
	ErrUndirectedRequired = errors.New("shortestpath: Johnson requires a digraph (an undirected edge's reweighting is direction-dependent)")
)

// Weight extracts the scalar cost of traversing an arc from its payload.
type Weight[A any] func(info A) float64

// Options configures Dijkstra. BellmanFord and Johnson take no options;
// Johnson's per-source Dijkstra runs use DefaultOptions.
type Options struct {
	MaxDistance float64
	Heuristic   func(n int64) float64
}

// Option is a functional option over Options.
type Option func(*Options)

// DefaultOptions returns the no-cap, no-heuristic configuration.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance stops exploring vertices whose tentative distance
// exceeds max. Must be non-negative.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max >= 0 {
			o.MaxDistance = max
		}
	}
}

// WithHeuristic turns Dijkstra into A*: h estimates the remaining
// distance from a node (by its int64 NodeID value) to the target and
// must never overestimate the true distance (admissibility), or the
// result is no longer guaranteed optimal.
func WithHeuristic(h func(n int64) float64) Option {
	return func(o *Options) { o.Heuristic = h }
}
