package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/hashtable"
)

func stringHash(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}

	return h
}

func intHash(n int) uint64 { return stringHash(strconv.Itoa(n)) }

func TestChainedMapInsertSearchRemove(t *testing.T) {
	m := hashtable.NewChainedMap[string, int](stringHash, func(a, b string) bool { return a == b })
	require.NoError(t, m.Insert("a", 1))
	require.NoError(t, m.Insert("b", 2))
	assert.ErrorIs(t, m.Insert("a", 99), hashtable.ErrDuplicate)

	v, ok := m.Search("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = m.Remove("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = m.Search("a")
	assert.False(t, ok)
}

func TestChainedMapInsertDupChains(t *testing.T) {
	m := hashtable.NewChainedMap[int, string](intHash, func(a, b int) bool { return a == b })
	m.InsertDup(1, "x")
	m.InsertDup(1, "y")
	assert.Equal(t, 2, m.Len())
}

func TestChainedMapTenThousandEntries(t *testing.T) {
	m := hashtable.NewChainedMap[int, int](intHash, func(a, b int) bool { return a == b })
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
	for i := 0; i < 10000; i++ {
		_, ok := m.Search(i)
		if i%2 == 0 {
			assert.False(t, ok)
		} else {
			assert.True(t, ok)
		}
	}
	assert.Equal(t, 5000, m.Len())
}
