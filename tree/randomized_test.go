package tree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/order"
	"github.com/lrleon/alephw/tree"
)

func TestRandomizedEndToEndScenario(t *testing.T) {
	rt := tree.NewRandomizedTree[int, int](order.Natural[int](), tree.WithRandSource[int, int](rand.New(rand.NewSource(99))))
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2} {
		require.NoError(t, rt.Insert(k, k))
	}

	var keys []int
	for _, p := range rt.InOrder().Collect() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 8, 9}, keys)

	pos, ok := rt.PositionOf(4)
	require.True(t, ok)
	assert.Equal(t, 3, pos)

	_, removed := rt.Remove(5)
	assert.True(t, removed)
	assert.Equal(t, 7, rt.Len())
}

func TestRandomizedSplitJoin(t *testing.T) {
	rt := tree.NewRandomizedTree[int, int](order.Natural[int](), tree.WithRandSource[int, int](rand.New(rand.NewSource(11))))
	for i := 1; i <= 50; i++ {
		require.NoError(t, rt.Insert(i, i))
	}
	l, r := rt.SplitByKey(26)
	assert.Equal(t, 25, l.Len())
	assert.Equal(t, 25, r.Len())
	require.NoError(t, l.JoinExclusive(r))
	assert.Equal(t, 50, l.Len())
	for i, p := range l.InOrder().Collect() {
		assert.Equal(t, i+1, p.Key)
	}
}

func TestRandomizedDuplicateError(t *testing.T) {
	rt := tree.NewRandomizedTree[int, int](order.Natural[int]())
	require.NoError(t, rt.Insert(1, 1))
	assert.ErrorIs(t, rt.Insert(1, 2), tree.ErrDuplicate)
}
