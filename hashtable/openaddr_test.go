package hashtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/hashtable"
)

func TestLinearProbeMapInsertSearchRemove(t *testing.T) {
	m := hashtable.NewLinearProbeMap[int, string](intHash, func(a, b int) bool { return a == b })
	require.NoError(t, m.Insert(1, "a"))
	require.NoError(t, m.Insert(2, "b"))
	assert.ErrorIs(t, m.Insert(1, "c"), hashtable.ErrDuplicate)

	v, ok := m.Search(2)
	require.True(t, ok)
	assert.Equal(t, "b", v)

	v, ok = m.Remove(1)
	require.True(t, ok)
	assert.Equal(t, "a", v)
	_, ok = m.Search(1)
	assert.False(t, ok)

	require.NoError(t, m.Insert(1, "a-again"))
	v, ok = m.Search(1)
	require.True(t, ok)
	assert.Equal(t, "a-again", v)
}

func TestLinearProbeMapTenThousandEntries(t *testing.T) {
	m := hashtable.NewLinearProbeMap[int, int](intHash, func(a, b int) bool { return a == b })
	for i := 0; i < 10000; i++ {
		require.NoError(t, m.Insert(i, i*2))
	}
	for i := 0; i < 10000; i++ {
		v, ok := m.Search(i)
		require.True(t, ok)
		assert.Equal(t, i*2, v)
	}
	for i := 0; i < 10000; i += 2 {
		_, ok := m.Remove(i)
		require.True(t, ok)
	}
	assert.Equal(t, 5000, m.Len())
}

func TestDoubleHashMapInsertSearchRemove(t *testing.T) {
	m := hashtable.NewDoubleHashMap[int, string](intHash, func(k int) uint64 { return uint64(k)*31 + 7 }, func(a, b int) bool { return a == b })
	for i := 0; i < 500; i++ {
		require.NoError(t, m.Insert(i, "v"))
	}
	for i := 0; i < 500; i++ {
		_, ok := m.Search(i)
		require.True(t, ok)
	}
	for i := 0; i < 500; i++ {
		_, ok := m.Remove(i)
		require.True(t, ok)
	}
	assert.Equal(t, 0, m.Len())
}

func TestOpenAddressingRejectsDuplicate(t *testing.T) {
	m := hashtable.NewLinearProbeMap[int, int](intHash, func(a, b int) bool { return a == b })
	require.NoError(t, m.Insert(5, 5))
	assert.ErrorIs(t, m.Insert(5, 6), hashtable.ErrDuplicate)
}
