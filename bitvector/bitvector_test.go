package bitvector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrleon/alephw/bitvector"
)

func TestSetTestClear(t *testing.T) {
	v := bitvector.New(8)
	assert.False(t, v.Test(3))
	v.Set(3)
	assert.True(t, v.Test(3))
	v.Clear(3)
	assert.False(t, v.Test(3))
}

func TestRankSelect(t *testing.T) {
	v := bitvector.New(16)
	for _, i := range []uint{1, 3, 4, 9} {
		v.Set(i)
	}
	assert.Equal(t, uint(4), v.PopCount())
	assert.Equal(t, uint(0), v.Rank(1))
	assert.Equal(t, uint(1), v.Rank(2))
	assert.Equal(t, uint(3), v.Rank(5))

	idx, ok := v.Select(2)
	assert.True(t, ok)
	assert.Equal(t, uint(4), idx)

	_, ok = v.Select(10)
	assert.False(t, ok)
}

func TestGrowsOnSet(t *testing.T) {
	v := bitvector.New(0)
	v.Set(100)
	assert.True(t, v.Test(100))
}
