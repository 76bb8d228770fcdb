package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/order"
	"github.com/lrleon/alephw/tree"
)

func TestAVLEndToEndScenario(t *testing.T) {
	at := tree.NewAVLTree[int, int](order.Natural[int]())
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2} {
		require.NoError(t, at.Insert(k, k))
	}

	var keys []int
	for _, p := range at.InOrder().Collect() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 8, 9}, keys)

	k, _, err := at.Select(0)
	require.NoError(t, err)
	assert.Equal(t, 1, k)

	k, _, err = at.Select(7)
	require.NoError(t, err)
	assert.Equal(t, 9, k)

	pos, ok := at.PositionOf(4)
	require.True(t, ok)
	assert.Equal(t, 3, pos)

	_, removed := at.Remove(5)
	assert.True(t, removed)

	keys = nil
	for _, p := range at.InOrder().Collect() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 7, 8, 9}, keys)
}

func TestAVLDuplicateAndSearchOrInsert(t *testing.T) {
	at := tree.NewAVLTree[int, string](order.Natural[int]())
	require.NoError(t, at.Insert(1, "a"))
	err := at.Insert(1, "b")
	assert.ErrorIs(t, err, tree.ErrDuplicate)

	at.InsertDup(1, "c")
	assert.Equal(t, 2, at.Len())

	v, inserted, err := at.SearchOrInsert(2, "x")
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.Equal(t, "x", v)

	v, inserted, err = at.SearchOrInsert(2, "y")
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, "x", v)
}

func TestAVLSelectOutOfRange(t *testing.T) {
	at := tree.NewAVLTree[int, int](order.Natural[int]())
	_, _, err := at.Select(0)
	assert.ErrorIs(t, err, tree.ErrOutOfRange)
}

func TestAVLSplitAndJoinExclusive(t *testing.T) {
	at := tree.NewAVLTree[int, int](order.Natural[int]())
	for i := 1; i <= 10; i++ {
		require.NoError(t, at.Insert(i, i*10))
	}
	left, right := at.SplitByKey(6)
	assert.Equal(t, 0, at.Len())
	assert.Equal(t, 5, left.Len())
	assert.Equal(t, 5, right.Len())

	lk, _, _ := left.Select(left.Len() - 1)
	assert.Equal(t, 5, lk)
	rk, _, _ := right.Select(0)
	assert.Equal(t, 6, rk)

	require.NoError(t, left.JoinExclusive(right))
	assert.Equal(t, 10, left.Len())
	assert.Equal(t, 0, right.Len())
	for _, p := range left.InOrder().Collect() {
		assert.Equal(t, p.Key*10, p.Value)
	}
}

func TestAVLJoinOverlapIsDomainError(t *testing.T) {
	a := tree.NewAVLTree[int, int](order.Natural[int]())
	b := tree.NewAVLTree[int, int](order.Natural[int]())
	require.NoError(t, a.Insert(5, 5))
	require.NoError(t, b.Insert(5, 5))
	err := a.Join(b)
	assert.ErrorIs(t, err, tree.ErrDomain)
}

func TestAVLRankConsistency(t *testing.T) {
	at := tree.NewAVLTree[int, int](order.Natural[int]())
	for _, k := range []int{9, 1, 8, 2, 7, 3, 6, 4, 5, 0} {
		require.NoError(t, at.Insert(k, k))
	}
	for i := 0; i < at.Len(); i++ {
		k, _, err := at.Select(i)
		require.NoError(t, err)
		pos, ok := at.PositionOf(k)
		require.True(t, ok)
		assert.Equal(t, i, pos)
	}
}
