package traversal

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
)

// queueItem pairs a node with its BFS depth, for the FIFO frontier.
type queueItem struct {
	id    graph.NodeID
	depth int
}

// BFS performs a breadth-first walk of g starting at start, driving
// visitor the same way DFS does, except OnFinishNode fires immediately
// after OnNode (BFS has no descendant subtree to wait on). It owns
// graph.BitBreadthFirst the same way DFS owns graph.BitDepthFirst.
//
// Complexity: O(num nodes + num arcs) amortised across filtered arcs.
func BFS[N, A any](g *graph.Graph[N, A], start graph.NodeID, visitor Visitor, opts ...Option) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.fullTraversal {
		if _, err := g.NodeInfo(start); err != nil {
			return fmt.Errorf("traversal: BFS: %w", ErrStartNodeNotFound)
		}
	}

	visited := make(map[graph.NodeID]bool)

	run := func(root graph.NodeID) error {
		queue := []queueItem{{id: root, depth: 0}}
		visited[root] = true
		_ = g.SetNodeBits(root, graph.BitBreadthFirst)

		for len(queue) > 0 {
			select {
			case <-cfg.ctx.Done():
				return cfg.ctx.Err()
			default:
			}

			item := queue[0]
			queue = queue[1:]

			if visitor.OnNode(item.id) == Stop {
				continue
			}
			visitor.OnFinishNode(item.id)

			if cfg.maxDepth >= 0 && item.depth >= cfg.maxDepth {
				continue
			}

			var stopped bool
			err := g.EachAdjacentArc(item.id, func(a graph.ArcID) bool {
				if !cfg.filter(a) {
					return true
				}
				nbr, oerr := g.OtherEndpoint(a, item.id)
				if oerr != nil {
					return true
				}
				if visited[nbr] {
					if visitor.OnNonTreeArc(a) == Stop {
						stopped = true

						return false
					}

					return true
				}
				if visitor.OnTreeArc(a) == Stop {
					stopped = true

					return false
				}
				visited[nbr] = true
				_ = g.SetNodeBits(nbr, graph.BitBreadthFirst)
				queue = append(queue, queueItem{id: nbr, depth: item.depth + 1})

				return true
			})
			if err != nil {
				return fmt.Errorf("traversal: BFS: %w", err)
			}
			if stopped {
				return nil
			}
		}

		return nil
	}

	var err error
	if cfg.fullTraversal {
		g.EachNode(func(id graph.NodeID) bool {
			if !visited[id] {
				if err = run(id); err != nil {
					return false
				}
			}

			return true
		})
	} else {
		err = run(start)
	}

	if cfg.restoreBits {
		for id := range visited {
			_ = g.ClearNodeBits(id, graph.BitBreadthFirst)
		}
	}

	return err
}
