package graph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/graph"
)

func buildTriangle(t *testing.T, backend graph.Backend) (*graph.Graph[string, int], []graph.NodeID) {
	t.Helper()
	g := graph.NewGraph[string, int](backend)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	_, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, 2)
	require.NoError(t, err)
	_, err = g.InsertArc(c, a, 3)
	require.NoError(t, err)

	return g, []graph.NodeID{a, b, c}
}

func TestGraphBasicsAcrossBackends(t *testing.T) {
	for _, backend := range []graph.Backend{graph.DoublyLinked, graph.SinglyLinked, graph.Packed} {
		g, nodes := buildTriangle(t, backend)
		assert.Equal(t, 3, g.NumNodes())
		assert.Equal(t, 3, g.NumArcs())

		deg, err := g.Degree(nodes[0])
		require.NoError(t, err)
		assert.Equal(t, 2, deg) // a--b and c--a both touch a

		arcID, ok := g.FindArc(nodes[0], nodes[1])
		assert.True(t, ok)
		src, err := g.Src(arcID)
		require.NoError(t, err)
		assert.Equal(t, nodes[0], src)
	}
}

func TestGraphRemoveNodeRemovesIncidentArcs(t *testing.T) {
	g, nodes := buildTriangle(t, graph.DoublyLinked)
	require.NoError(t, g.RemoveNode(nodes[0]))
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumArcs())

	_, ok := g.FindArc(nodes[0], nodes[1])
	assert.False(t, ok)
}

func TestDigraphOnlyInsertsForwardAdjacency(t *testing.T) {
	g := graph.NewDigraph[string, int](graph.DoublyLinked)
	u := g.InsertNode("u")
	v := g.InsertNode("v")
	_, err := g.InsertArc(u, v, 7)
	require.NoError(t, err)

	du, _ := g.Degree(u)
	dv, _ := g.Degree(v)
	assert.Equal(t, 1, du)
	assert.Equal(t, 0, dv)
}

func TestGraphLoopRejectedByDefault(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	u := g.InsertNode("u")
	_, err := g.InsertArc(u, u, 1)
	assert.ErrorIs(t, err, graph.ErrLoopNotAllowed)

	g2 := graph.NewGraph[string, int](graph.DoublyLinked, graph.WithLoops[string, int](true))
	u2 := g2.InsertNode("u")
	_, err = g2.InsertArc(u2, u2, 1)
	assert.NoError(t, err)
}

func TestGraphScratchStateBitsCounterCookie(t *testing.T) {
	g := graph.NewGraph[string, int](graph.DoublyLinked)
	u := g.InsertNode("u")

	require.NoError(t, g.SetNodeBits(u, graph.BitDepthFirst))
	bits, err := g.NodeBits(u)
	require.NoError(t, err)
	assert.Equal(t, graph.BitDepthFirst, bits)

	require.NoError(t, g.SetNodeCounter(u, 42))
	c, err := g.NodeCounter(u)
	require.NoError(t, err)
	assert.Equal(t, int64(42), c)

	require.NoError(t, g.SetNodeCookie(u, "payload"))
	cookie, err := g.NodeCookie(u)
	require.NoError(t, err)
	assert.Equal(t, "payload", cookie)

	g.ResetNodeBits(graph.BitDepthFirst)
	bits, _ = g.NodeBits(u)
	assert.Equal(t, graph.Bits(0), bits)

	g.ClearCookies()
	cookie, _ = g.NodeCookie(u)
	assert.Nil(t, cookie)
}

func TestGraphClone(t *testing.T) {
	g, nodes := buildTriangle(t, graph.DoublyLinked)
	clone, nodeMap, arcMap := g.Clone()

	assert.Equal(t, g.NumNodes(), clone.NumNodes())
	assert.Equal(t, g.NumArcs(), clone.NumArcs())
	assert.Len(t, nodeMap, 3)
	assert.Len(t, arcMap, 3)

	newID, ok := nodeMap[nodes[0]]
	require.True(t, ok)
	info, err := clone.NodeInfo(newID)
	require.NoError(t, err)
	assert.Equal(t, "a", info)
}

func TestWriteReadGraphRoundTrip(t *testing.T) {
	g, _ := buildTriangle(t, graph.DoublyLinked)

	var buf bytes.Buffer
	require.NoError(t, graph.WriteGraph(&buf, g))

	got, err := graph.ReadGraph[string, int](&buf, graph.DoublyLinked)
	require.NoError(t, err)
	assert.Equal(t, g.NumNodes(), got.NumNodes())
	assert.Equal(t, g.NumArcs(), got.NumArcs())
}
