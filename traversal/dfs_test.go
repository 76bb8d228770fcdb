package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/graph"
	"github.com/lrleon/alephw/traversal"
)

// orderVisitor records the pre-order and post-order sequence of nodes
// visited, for assertion against known small graphs.
type orderVisitor struct {
	traversal.BaseVisitor
	preOrder  []graph.NodeID
	postOrder []graph.NodeID
}

func (v *orderVisitor) OnNode(n graph.NodeID) traversal.Signal {
	v.preOrder = append(v.preOrder, n)

	return traversal.Continue
}

func (v *orderVisitor) OnFinishNode(n graph.NodeID) traversal.Signal {
	v.postOrder = append(v.postOrder, n)

	return traversal.Continue
}

func buildLine(t *testing.T) (*graph.Graph[string, int], []graph.NodeID) {
	t.Helper()
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	d := g.InsertNode("d")
	_, err := g.InsertArc(a, b, 0)
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, 0)
	require.NoError(t, err)
	_, err = g.InsertArc(c, d, 0)
	require.NoError(t, err)

	return g, []graph.NodeID{a, b, c, d}
}

func TestDFSVisitsEveryNodeOnALine(t *testing.T) {
	g, nodes := buildLine(t)
	v := &orderVisitor{}
	require.NoError(t, traversal.DFS[string, int](g, nodes[0], v))

	assert.Equal(t, []graph.NodeID{nodes[0], nodes[1], nodes[2], nodes[3]}, v.preOrder)
	assert.Equal(t, []graph.NodeID{nodes[3], nodes[2], nodes[1], nodes[0]}, v.postOrder)

	bits, err := g.NodeBits(nodes[0])
	require.NoError(t, err)
	assert.NotZero(t, bits&graph.BitDepthFirst)
}

func TestDFSRestoreBitsClearsOnExit(t *testing.T) {
	g, nodes := buildLine(t)
	require.NoError(t, traversal.DFS[string, int](g, nodes[0], &orderVisitor{}, traversal.WithRestoreBits()))

	bits, err := g.NodeBits(nodes[0])
	require.NoError(t, err)
	assert.Zero(t, bits&graph.BitDepthFirst)
}

func TestDFSFullTraversalCoversDisconnectedComponents(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c") // disconnected
	_, err := g.InsertArc(a, b, 0)
	require.NoError(t, err)

	v := &orderVisitor{}
	require.NoError(t, traversal.DFS[string, int](g, a, v, traversal.WithFullTraversal()))
	assert.ElementsMatch(t, []graph.NodeID{a, b, c}, v.preOrder)
}

func TestDFSStartNodeNotFound(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	err := traversal.DFS[string, int](g, graph.NodeID(99), &orderVisitor{})
	assert.ErrorIs(t, err, traversal.ErrStartNodeNotFound)
}

func TestDFSArcFilterHidesArc(t *testing.T) {
	g, nodes := buildLine(t)
	arcID, ok := g.FindArc(nodes[1], nodes[2])
	require.True(t, ok)

	v := &orderVisitor{}
	filter := func(a graph.ArcID) bool { return a != arcID }
	require.NoError(t, traversal.DFS[string, int](g, nodes[0], v, traversal.WithArcFilter(filter)))

	assert.Equal(t, []graph.NodeID{nodes[0], nodes[1]}, v.preOrder)
}
