package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/order"
	"github.com/lrleon/alephw/tree"
)

func TestSplayEndToEndScenario(t *testing.T) {
	st := tree.NewSplayTree[int, int](order.Natural[int]())
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9, 2} {
		require.NoError(t, st.Insert(k, k))
	}

	var keys []int
	for _, p := range st.InOrder().Collect() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 8, 9}, keys)

	v, ok := st.Search(8)
	require.True(t, ok)
	assert.Equal(t, 8, v)
	assert.Equal(t, 8, st.Len()-0) // root now splayed to 8; len unaffected

	_, removed := st.Remove(5)
	assert.True(t, removed)

	keys = nil
	for _, p := range st.InOrder().Collect() {
		keys = append(keys, p.Key)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 7, 8, 9}, keys)
}

func TestSplayDuplicateAndMissingRemove(t *testing.T) {
	st := tree.NewSplayTree[int, int](order.Natural[int]())
	require.NoError(t, st.Insert(1, 1))
	assert.ErrorIs(t, st.Insert(1, 2), tree.ErrDuplicate)

	_, ok := st.Remove(42)
	assert.False(t, ok)
}

func TestSplaySplitJoin(t *testing.T) {
	st := tree.NewSplayTree[int, int](order.Natural[int]())
	for i := 1; i <= 15; i++ {
		require.NoError(t, st.Insert(i, i))
	}
	l, r, err := st.SplitByPosition(7)
	require.NoError(t, err)
	assert.Equal(t, 7, l.Len())
	assert.Equal(t, 8, r.Len())
	require.NoError(t, l.JoinExclusive(r))
	assert.Equal(t, 15, l.Len())
}
