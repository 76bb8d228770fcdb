package maxflow

import (
	"fmt"
	"math"

	"github.com/lrleon/alephw/graph"
)

// arcPair identifies a residual arc by its endpoints; parallel original
// arcs between the same pair collapse into one residual entry (their
// capacities sum), matching how a single augmenting path treats the
// pair as one crossing.
type arcPair struct {
	u, v graph.NodeID
}

// network is the auxiliary residual graph of §3: every original arc
// u->v with capacity c contributes a forward residual cap[u,v] = c and
// an implicit backward residual cap[v,u] = 0, updated as a reciprocal
// pair by augment.
type network struct {
	cap  map[arcPair]float64
	adj  map[graph.NodeID][]graph.NodeID
	zero map[arcPair]bool // dedups adjacency entries
}

func newNetwork() *network {
	return &network{
		cap:  make(map[arcPair]float64),
		adj:  make(map[graph.NodeID][]graph.NodeID),
		zero: make(map[arcPair]bool),
	}
}

func (n *network) link(u, v graph.NodeID) {
	if u == v {
		return
	}
	fwd, rev := arcPair{u, v}, arcPair{v, u}
	if !n.zero[fwd] {
		n.zero[fwd] = true
		n.adj[u] = append(n.adj[u], v)
	}
	if !n.zero[rev] {
		n.zero[rev] = true
		n.adj[v] = append(n.adj[v], u)
	}
}

func (n *network) addCapacity(u, v graph.NodeID, c float64) {
	n.cap[arcPair{u, v}] += c
	n.link(u, v)
}

func (n *network) residual(u, v graph.NodeID) float64 {
	return n.cap[arcPair{u, v}]
}

// augment pushes flow along path, decreasing each forward residual and
// increasing its reciprocal backward residual.
func (n *network) augment(path []graph.NodeID, flow float64) {
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		n.cap[arcPair{u, v}] -= flow
		n.cap[arcPair{v, u}] += flow
	}
}

// buildNetwork sums every arc's capacity into the residual network,
// validating non-negative capacities. Undirected arcs contribute
// capacity usable in either direction.
func buildNetwork[N, A any](g *graph.Graph[N, A], capacity Capacity[A]) (*network, map[arcPair]float64, error) {
	net := newNetwork()
	g.EachNode(func(id graph.NodeID) bool {
		if _, ok := net.adj[id]; !ok {
			net.adj[id] = nil
		}

		return true
	})

	orig := make(map[arcPair]float64)
	var buildErr error
	g.EachArc(func(a graph.ArcID) bool {
		u, uerr := g.Src(a)
		v, verr := g.Tgt(a)
		info, ierr := g.ArcInfo(a)
		if uerr != nil || verr != nil || ierr != nil {
			return true
		}
		c := capacity(info)
		if c < 0 {
			buildErr = fmt.Errorf("maxflow: arc %d: %w", a, ErrNegativeCapacity)

			return false
		}
		if u == v {
			return true // a self-loop can never carry useful flow
		}

		net.addCapacity(u, v, c)
		orig[arcPair{u, v}] += c
		if !g.IsDirected() {
			net.addCapacity(v, u, c)
			orig[arcPair{v, u}] += c
		}

		return true
	})
	if buildErr != nil {
		return nil, nil, buildErr
	}

	return net, orig, nil
}

// bfsAugmentingPath finds the fewest-arcs source->sink path with every
// residual strictly above eps, and its bottleneck (minimum residual
// along the path). Returns a nil path if sink is unreachable.
func bfsAugmentingPath(net *network, source, sink graph.NodeID, eps float64) ([]graph.NodeID, float64) {
	parent := make(map[graph.NodeID]graph.NodeID)
	visited := map[graph.NodeID]bool{source: true}
	bottleneck := map[graph.NodeID]float64{source: math.Inf(1)}

	queue := []graph.NodeID{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.adj[u] {
			if visited[v] {
				continue
			}
			r := net.residual(u, v)
			if r <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			if r < bottleneck[u] {
				bottleneck[v] = r
			} else {
				bottleneck[v] = bottleneck[u]
			}
			if v == sink {
				return reconstructPath(parent, source, sink), bottleneck[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// runToExhaustion repeatedly augments net along the shortest source->sink
// path until none remains above eps, tracing each augmentation through
// cfg.Logger (a structured replacement for a Verbose-gated
// `fmt.Printf("augmenting path %v with flow %.3g\n", ...)` pattern).
// Returns the total flow pushed.
func runToExhaustion(net *network, source, sink graph.NodeID, cfg Options) float64 {
	var maxFlow float64
	for {
		path, bottleneck := bfsAugmentingPath(net, source, sink, cfg.Epsilon)
		if path == nil || bottleneck <= cfg.Epsilon {
			break
		}
		net.augment(path, bottleneck)
		maxFlow += bottleneck
		cfg.Logger.Debugw("augmenting path", "path", path, "bottleneck", bottleneck)
	}

	return maxFlow
}

func reconstructPath(parent map[graph.NodeID]graph.NodeID, source, sink graph.NodeID) []graph.NodeID {
	path := []graph.NodeID{sink}
	for cur := sink; cur != source; {
		p := parent[cur]
		path = append([]graph.NodeID{p}, path...)
		cur = p
	}

	return path
}
