package traversal

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
)

// dfsWalker carries mutable state across one DFS run.
type dfsWalker[N, A any] struct {
	g       *graph.Graph[N, A]
	cfg     config
	visitor Visitor
	visited map[graph.NodeID]bool
}

// DFS performs a depth-first walk of g starting at start, driving visitor
// with pre-order (OnNode), tree-arc, non-tree-arc, and post-order
// (OnFinishNode) events. With WithFullTraversal it additionally restarts
// from every node not reached by the first walk, covering every
// component. It owns graph.BitDepthFirst on every node it visits: the
// bit is set on entry and, with WithRestoreBits, cleared again before
// DFS returns.
//
// Complexity: O(num nodes + num arcs) amortised across filtered arcs.
func DFS[N, A any](g *graph.Graph[N, A], start graph.NodeID, visitor Visitor, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.fullTraversal {
		if _, err := g.NodeInfo(start); err != nil {
			return fmt.Errorf("traversal: DFS: %w", ErrStartNodeNotFound)
		}
	}

	w := &dfsWalker[N, A]{g: g, cfg: cfg, visitor: visitor, visited: make(map[graph.NodeID]bool)}

	var err error
	if cfg.fullTraversal {
		g.EachNode(func(id graph.NodeID) bool {
			if !w.visited[id] {
				if err = w.visit(id, 0); err != nil {
					return false
				}
			}

			return true
		})
	} else {
		err = w.visit(start, 0)
	}

	if cfg.restoreBits {
		for id := range w.visited {
			_ = g.ClearNodeBits(id, graph.BitDepthFirst)
		}
	}

	return err
}

func (w *dfsWalker[N, A]) visit(id graph.NodeID, depth int) error {
	select {
	case <-w.cfg.ctx.Done():
		return w.cfg.ctx.Err()
	default:
	}
	if w.cfg.maxDepth >= 0 && depth > w.cfg.maxDepth {
		return nil
	}

	w.visited[id] = true
	_ = w.g.SetNodeBits(id, graph.BitDepthFirst)

	if w.visitor.OnNode(id) == Stop {
		return nil
	}

	var walkErr error
	err := w.g.EachAdjacentArc(id, func(a graph.ArcID) bool {
		if !w.cfg.filter(a) {
			return true
		}
		nbr, oerr := w.g.OtherEndpoint(a, id)
		if oerr != nil {
			return true
		}
		if w.visited[nbr] {
			if w.visitor.OnNonTreeArc(a) == Stop {
				walkErr = nil

				return false
			}

			return true
		}

		if w.visitor.OnTreeArc(a) == Stop {
			return false
		}
		if walkErr = w.visit(nbr, depth+1); walkErr != nil {
			return false
		}

		return true
	})
	if err != nil {
		return fmt.Errorf("traversal: DFS: %w", err)
	}
	if walkErr != nil {
		return walkErr
	}

	w.visitor.OnFinishNode(id)

	return nil
}
