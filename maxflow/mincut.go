package maxflow

import (
	"fmt"

	"github.com/lrleon/alephw/graph"
)

// CutArc is one original arc crossing a minimum cut, from a node
// reachable from the source to one that is not, in the final residual
// network.
type CutArc struct {
	From, To graph.NodeID
	Capacity float64
}

// MinCut computes a minimum source-sink cut of g: it runs EdmondsKarp
// to exhaustion, then partitions nodes into S (reachable from source in
// the final residual network) and T = V\S. The cut arcs are the
// original arcs from S to T; their capacities sum to the max-flow
// value, per the max-flow min-cut theorem.
func MinCut[N, A any](g *graph.Graph[N, A], source, sink graph.NodeID, capacity Capacity[A], opts ...Option) (float64, []CutArc, error) {
	if err := validateEndpoints(g, source, sink); err != nil {
		return 0, nil, fmt.Errorf("maxflow: MinCut: %w", err)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	net, orig, err := buildNetwork(g, capacity)
	if err != nil {
		return 0, nil, fmt.Errorf("maxflow: MinCut: %w", err)
	}

	maxFlow := runToExhaustion(net, source, sink, cfg)

	reachable := map[graph.NodeID]bool{source: true}
	queue := []graph.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.adj[u] {
			if reachable[v] || net.residual(u, v) <= cfg.Epsilon {
				continue
			}
			reachable[v] = true
			queue = append(queue, v)
		}
	}

	var cut []CutArc
	for pair, c := range orig {
		if c <= cfg.Epsilon {
			continue
		}
		if reachable[pair.u] && !reachable[pair.v] {
			cut = append(cut, CutArc{From: pair.u, To: pair.v, Capacity: c})
		}
	}

	return maxFlow, cut, nil
}
