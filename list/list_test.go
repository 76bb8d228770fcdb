package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrleon/alephw/list"
)

func TestDListPushRemove(t *testing.T) {
	var l list.DList[int]
	h1 := l.PushBack(1)
	h2 := l.PushBack(2)
	l.PushFront(0)
	assert.Equal(t, 3, l.Len())

	var got []int
	l.Each(func(n list.DNode[int]) bool {
		got = append(got, n.Value())
		return true
	})
	assert.Equal(t, []int{0, 1, 2}, got)

	l.Remove(h1)
	assert.Equal(t, 2, l.Len())
	l.Remove(h2)
	assert.Equal(t, 1, l.Len())
}

func TestSListPushRemove(t *testing.T) {
	var l list.SList[string]
	l.PushBack("a")
	l.PushBack("b")
	l.PushBack("c")
	assert.Equal(t, 3, l.Len())

	ok := l.Remove(func(s string) bool { return s == "b" })
	assert.True(t, ok)
	assert.Equal(t, 2, l.Len())

	var got []string
	l.Each(func(s string) bool {
		got = append(got, s)
		return true
	})
	assert.Equal(t, []string{"a", "c"}, got)
}
