package dynarray_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/alephw/dynarray"
)

func TestAppendAtLen(t *testing.T) {
	d := dynarray.New[int](0)
	for i := 0; i < 5; i++ {
		d.Append(i * i)
	}
	require.Equal(t, 5, d.Len())
	v, err := d.At(3)
	require.NoError(t, err)
	assert.Equal(t, 9, v)
}

func TestOutOfRange(t *testing.T) {
	d := dynarray.New[string](0)
	_, err := d.At(0)
	assert.True(t, errors.Is(err, dynarray.ErrOutOfRange))

	err = d.Set(0, "x")
	assert.True(t, errors.Is(err, dynarray.ErrOutOfRange))
}

func TestRemoveAtSwap(t *testing.T) {
	d := dynarray.FromSlice([]int{1, 2, 3, 4})
	v, err := d.RemoveAtSwap(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 3, d.Len())
	// index 1 now holds what was the last element (4)
	got, _ := d.At(1)
	assert.Equal(t, 4, got)
}

func TestRemoveLastEmpty(t *testing.T) {
	d := dynarray.New[int](0)
	_, err := d.RemoveLast()
	assert.True(t, errors.Is(err, dynarray.ErrOutOfRange))
}

func TestReserveShrinkToFit(t *testing.T) {
	d := dynarray.New[int](0)
	d.Reserve(64)
	assert.GreaterOrEqual(t, d.Cap(), 64)
	d.Append(1)
	d.ShrinkToFit()
	assert.Equal(t, 1, d.Cap())
}
