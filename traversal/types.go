package traversal

import (
	"context"

	"github.com/lrleon/alephw/graph"
)

// Signal is the value a Visitor hook returns to tell the driver whether
// to keep exploring (Continue) or cut exploration short (Stop); see
// Visitor for how far a Stop reaches.
type Signal int

const (
	Continue Signal = iota
	Stop
)

// Visitor receives the four traversal events of a DFS or BFS walk.
// OnNode fires pre-order, on first discovery of a node. OnTreeArc fires
// for an arc that leads to an undiscovered node (it becomes part of the
// traversal tree); OnNonTreeArc fires for an arc to an already-discovered
// node. OnFinishNode fires post-order, once every descendant reachable
// through n has been fully explored (BFS, which has no notion of
// descendants, fires it immediately after OnNode).
//
// Stop does not end the whole walk. In DFS, Stop from OnNode skips that
// node's arcs and its OnFinishNode; Stop from OnTreeArc or OnNonTreeArc
// ends the scan of the current node's arcs, its OnFinishNode fires, and
// the walk goes on from its parent. In BFS, Stop from OnNode skips
// expanding that node and its OnFinishNode; Stop from OnTreeArc or
// OnNonTreeArc ends the walk from the current root (with
// WithFullTraversal, the walk goes on from the next undiscovered node).
type Visitor interface {
	OnNode(n graph.NodeID) Signal
	OnTreeArc(a graph.ArcID) Signal
	OnNonTreeArc(a graph.ArcID) Signal
	OnFinishNode(n graph.NodeID) Signal
}

// BaseVisitor implements Visitor with no-op hooks that always continue.
// Embed it to override only the hooks a caller cares about.
type BaseVisitor struct{}

func (BaseVisitor) OnNode(graph.NodeID) Signal       { return Continue }
func (BaseVisitor) OnTreeArc(graph.ArcID) Signal     { return Continue }
func (BaseVisitor) OnNonTreeArc(graph.ArcID) Signal  { return Continue }
func (BaseVisitor) OnFinishNode(graph.NodeID) Signal { return Continue }

// ArcFilter hides an arc from the traversal when it returns false,
// without needing to copy or mutate the underlying graph (e.g. to walk
// only residual-positive arcs of a flow network).
type ArcFilter func(a graph.ArcID) bool

// Option configures a DFS or BFS run.
type Option func(*config)

type config struct {
	ctx           context.Context
	filter        ArcFilter
	fullTraversal bool
	restoreBits   bool
	maxDepth      int
}

func defaultConfig() config {
	return config{
		ctx:      context.Background(),
		filter:   func(graph.ArcID) bool { return true },
		maxDepth: -1,
	}
}

// WithContext enables cancellation; a nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithArcFilter installs fn as the traversal's arc filter; arcs for
// which fn returns false are never followed.
func WithArcFilter(fn ArcFilter) Option {
	return func(c *config) {
		if fn != nil {
			c.filter = fn
		}
	}
}

// WithFullTraversal restarts the walk from every undiscovered node,
// covering every connected component (or weakly-connected component,
// for a digraph) instead of stopping once the start node's component is
// exhausted.
func WithFullTraversal() Option {
	return func(c *config) { c.fullTraversal = true }
}

// WithRestoreBits clears the traversal's ownership bit (BitDepthFirst or
// BitBreadthFirst) from every visited node once the walk finishes,
// instead of leaving it set for the caller to inspect.
func WithRestoreBits() Option {
	return func(c *config) { c.restoreBits = true }
}

// WithMaxDepth limits DFS recursion (BFS: enqueuing) beyond the given
// depth; a negative limit (the default) means unlimited. Depth 0 visits
// only the start node.
func WithMaxDepth(limit int) Option {
	return func(c *config) { c.maxDepth = limit }
}
