package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/connectivity"
	"github.com/lrleon/alephw/graph"
)

func TestComponentsSplitsDisconnectedGraph(t *testing.T) {
	g := graph.NewGraph[int, int](graph.DoublyLinked)
	a := g.InsertNode(1)
	b := g.InsertNode(2)
	c := g.InsertNode(3) // isolated
	_, err := g.InsertArc(a, b, 0)
	require.NoError(t, err)

	comps, err := connectivity.Components[int, int](g)
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}

func buildCycle(t *testing.T, directed bool) (*graph.Graph[int, int], []graph.NodeID) {
	t.Helper()
	var g *graph.Graph[int, int]
	if directed {
		g = graph.NewDigraph[int, int](graph.DoublyLinked)
	} else {
		g = graph.NewGraph[int, int](graph.DoublyLinked)
	}
	nodes := make([]graph.NodeID, 4)
	for i := range nodes {
		nodes[i] = g.InsertNode(i)
	}
	for i := 0; i < 4; i++ {
		_, err := g.InsertArc(nodes[i], nodes[(i+1)%4], 0)
		require.NoError(t, err)
	}

	return g, nodes
}

func TestTarjanAndKosarajuAgreeOnACycleSCC(t *testing.T) {
	g, _ := buildCycle(t, true)

	tarjan, err := connectivity.TarjanSCC[int, int](g)
	require.NoError(t, err)
	kosaraju, err := connectivity.KosarajuSCC[int, int](g)
	require.NoError(t, err)

	assert.Len(t, tarjan, 1)
	assert.Len(t, kosaraju, 1)
	assert.ElementsMatch(t, tarjan[0], kosaraju[0])
}

func TestTarjanSeparatesTwoDisjointCycles(t *testing.T) {
	g := graph.NewDigraph[int, int](graph.DoublyLinked)
	a, b := g.InsertNode(1), g.InsertNode(2)
	c, d := g.InsertNode(3), g.InsertNode(4)
	_, _ = g.InsertArc(a, b, 0)
	_, _ = g.InsertArc(b, a, 0)
	_, _ = g.InsertArc(c, d, 0)
	_, _ = g.InsertArc(d, c, 0)

	sccs, err := connectivity.TarjanSCC[int, int](g)
	require.NoError(t, err)
	assert.Len(t, sccs, 2)
}

func TestCutVerticesOnPathGraph(t *testing.T) {
	g := graph.NewGraph[int, int](graph.DoublyLinked)
	nodes := make([]graph.NodeID, 4)
	for i := range nodes {
		nodes[i] = g.InsertNode(i)
	}
	_, _ = g.InsertArc(nodes[0], nodes[1], 0)
	_, _ = g.InsertArc(nodes[1], nodes[2], 0)
	_, _ = g.InsertArc(nodes[2], nodes[3], 0)

	cuts, err := connectivity.CutVertices[int, int](g, nodes[0])
	require.NoError(t, err)
	assert.ElementsMatch(t, []graph.NodeID{nodes[1], nodes[2]}, cuts)
}

func TestCutVerticesOnCycleGraphIsEmpty(t *testing.T) {
	g, nodes := buildCycle(t, false)

	cuts, err := connectivity.CutVertices[int, int](g, nodes[0])
	require.NoError(t, err)
	assert.Empty(t, cuts)
}

func TestCutVerticesOnStarGraph(t *testing.T) {
	g := graph.NewGraph[int, int](graph.DoublyLinked)
	center := g.InsertNode(0)
	leaves := make([]graph.NodeID, 5)
	for i := range leaves {
		leaves[i] = g.InsertNode(i + 1)
		_, err := g.InsertArc(center, leaves[i], 0)
		require.NoError(t, err)
	}

	cuts, err := connectivity.CutVertices[int, int](g, center)
	require.NoError(t, err)
	assert.Equal(t, []graph.NodeID{center}, cuts)
}

func TestBlocksOnPathGraphIsOneBlockPerArc(t *testing.T) {
	g := graph.NewGraph[int, int](graph.DoublyLinked)
	nodes := make([]graph.NodeID, 4)
	for i := range nodes {
		nodes[i] = g.InsertNode(i)
	}
	_, _ = g.InsertArc(nodes[0], nodes[1], 0)
	_, _ = g.InsertArc(nodes[1], nodes[2], 0)
	_, _ = g.InsertArc(nodes[2], nodes[3], 0)

	blocks, err := connectivity.Blocks[int, int](g, nodes[0])
	require.NoError(t, err)
	assert.Len(t, blocks, 3)
	for _, b := range blocks {
		assert.Len(t, b, 1)
	}
}

func TestBlocksOnCycleGraphIsOneBlock(t *testing.T) {
	g, nodes := buildCycle(t, false)

	blocks, err := connectivity.Blocks[int, int](g, nodes[0])
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Len(t, blocks[0], 4)
}
