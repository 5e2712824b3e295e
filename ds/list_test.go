package ds

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewList(t *testing.T) {
	list := NewList[int]()
	assert.Equal(t, 0, list.Len())
	_, ok := list.Front()
	assert.False(t, ok)
}

func TestListPushFrontPopFront(t *testing.T) {
	list := NewList[int]()
	list.PushFront(1)
	list.PushFront(2)
	list.PushFront(3)

	v, ok := list.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = list.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = list.PopFront()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = list.PopFront()
	assert.False(t, ok)
}

func TestListPushBack(t *testing.T) {
	list := NewList[int]()
	list.PushBack(5)
	list.PushBack(10)
	assert.Equal(t, 2, list.Len())

	v, _ := list.PopFront()
	assert.Equal(t, 5, v, "PushBack/PopFront should behave as a FIFO queue")
	v, _ = list.PopFront()
	assert.Equal(t, 10, v)
}

func TestListFront(t *testing.T) {
	list := NewList[int]()
	list.PushFront(1)
	v, ok := list.Front()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	list.PopFront()
	_, ok = list.Front()
	assert.False(t, ok)
}

func TestListEmpty(t *testing.T) {
	list := NewList[int]()
	list.PushBack(5)
	list.PushBack(10)
	list.Empty()
	assert.Equal(t, 0, list.Len())
	_, ok := list.PopFront()
	assert.False(t, ok)
}

func TestListIter(t *testing.T) {
	list := NewList[int]()
	list.PushFront(1)
	list.PushFront(2)

	it := list.Iter()
	v, ok := it.Next()
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = it.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	_, ok = it.Next()
	assert.False(t, ok)

	// Iterating must not consume the list.
	assert.Equal(t, 2, list.Len())
}
