package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/mst"
)

func identityWeight(w int) float64 { return float64(w) }

// buildSixNodeGraph builds a six-vertex graph {A,B,C,D,E,F} with
// undirected edges AB:4, AC:2, BC:3, BD:2, CD:4, CE:3, DE:3, DF:2, EF:3,
// whose minimum spanning tree (e.g. AC,BD,DF,BC,CE) weighs 12.
func buildSixNodeGraph(t *testing.T) (*graph.Graph[string, int], map[string]graph.NodeID) {
	t.Helper()
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	ids := make(map[string]graph.NodeID)
	for _, name := range []string{"A", "B", "C", "D", "E", "F"} {
		ids[name] = g.InsertNode(name)
	}
	type edge struct {
		u, v string
		w    int
	}
	edges := []edge{
		{"A", "B", 4}, {"A", "C", 2}, {"B", "C", 3}, {"B", "D", 2},
		{"C", "D", 4}, {"C", "E", 3}, {"D", "E", 3}, {"D", "F", 2}, {"E", "F", 3},
	}
	for _, e := range edges {
		_, err := g.InsertArc(ids[e.u], ids[e.v], e.w)
		require.NoError(t, err)
	}

	return g, ids
}

func TestKruskalMatchesKnownMSTWeight(t *testing.T) {
	g, _ := buildSixNodeGraph(t)

	arcs, weight, err := mst.Kruskal[string, int](g, identityWeight)
	require.NoError(t, err)
	assert.Equal(t, 12.0, weight)
	assert.Len(t, arcs, 5)
}

func TestPrimMatchesKnownMSTWeight(t *testing.T) {
	g, ids := buildSixNodeGraph(t)

	arcs, weight, err := mst.Prim[string, int](g, ids["A"], identityWeight)
	require.NoError(t, err)
	assert.Equal(t, 12.0, weight)
	assert.Len(t, arcs, 5)
}

func TestKruskalAndPrimAgree(t *testing.T) {
	g, ids := buildSixNodeGraph(t)

	_, kw, err := mst.Kruskal[string, int](g, identityWeight)
	require.NoError(t, err)
	_, pw, err := mst.Prim[string, int](g, ids["A"], identityWeight)
	require.NoError(t, err)

	assert.Equal(t, kw, pw)
}

func TestKruskalSingleNodeIsEmptyMST(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	g.InsertNode("lonely")

	arcs, weight, err := mst.Kruskal[string, int](g, identityWeight)
	require.NoError(t, err)
	assert.Empty(t, arcs)
	assert.Equal(t, 0.0, weight)
}

func TestKruskalDisconnectedGraphFails(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	g.InsertNode("c") // isolated, disconnected from {a,b}
	_, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)

	_, _, err = mst.Kruskal[string, int](g, identityWeight)
	require.Error(t, err)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestPrimRejectsDirectedGraph(t *testing.T) {
	g := graph.NewDigraph[string, int](graph.DoublyLinked)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	_, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)

	_, _, err = mst.Prim[string, int](g, a, identityWeight)
	require.Error(t, err)
	assert.ErrorIs(t, err, mst.ErrDirectedGraph)
}

func TestPrimRejectsUnknownRoot(t *testing.T) {
	g, _ := buildSixNodeGraph(t)
	bogus := graph.NodeID(9999)

	_, _, err := mst.Prim[string, int](g, bogus, identityWeight)
	require.Error(t, err)
	assert.ErrorIs(t, err, mst.ErrRootNotFound)
}
