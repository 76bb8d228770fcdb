package maxflow

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
)

func validateEndpoints[N, A any](g *graph.Graph[N, A], source, sink graph.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	if source == sink {
		return ErrSourceEqualsSink
	}
	if _, err := g.NodeInfo(source); err != nil {
		return ErrSourceNotFound
	}
	if _, err := g.NodeInfo(sink); err != nil {
		return ErrSinkNotFound
	}

	return nil
}

// EdmondsKarp computes the maximum flow from source to sink in g by
// repeatedly augmenting along the shortest (fewest-arc) path found by
// BFS on the residual auxiliary network, pushing the path's bottleneck
// residual and maintaining forward/backward residuals as a reciprocal
// pair.
//
// Returns the flow actually carried on each original (u,v) arc pair
// (parallel arcs between the same endpoints are reported together).
//
// Complexity: O(num nodes * num arcs^2).
func EdmondsKarp[N, A any](g *graph.Graph[N, A], source, sink graph.NodeID, capacity Capacity[A], opts ...Option) (float64, map[graph.NodeID]map[graph.NodeID]float64, error) {
	if err := validateEndpoints(g, source, sink); err != nil {
		return 0, nil, fmt.Errorf("maxflow: EdmondsKarp: %w", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	net, orig, err := buildNetwork(g, capacity)
	if err != nil {
		return 0, nil, fmt.Errorf("maxflow: EdmondsKarp: %w", err)
	}

	maxFlow := runToExhaustion(net, source, sink, cfg)

	flow := make(map[graph.NodeID]map[graph.NodeID]float64)
	for pair, c := range orig {
		used := c - net.residual(pair.u, pair.v)
		if used <= cfg.Epsilon {
			continue
		}
		if flow[pair.u] == nil {
			flow[pair.u] = make(map[graph.NodeID]float64)
		}
		flow[pair.u][pair.v] = used
	}

	return maxFlow, flow, nil
}
