package pawnpad

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPop(t *testing.T) {
	s := NewStack[int](3)
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)

	s.Push(1)
	s.Push(2)
	top, err := s.Top()
	assert.NoError(t, err)
	assert.Equal(t, 2, top)

	v, _ := s.Pop()
	assert.Equal(t, 2, v)
	v, _ = s.Pop()
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, s.Len())
}

func TestStackDropsOldest(t *testing.T) {
	s := NewStack[int](2)
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 2, s.Len())
	v, _ := s.Pop()
	assert.Equal(t, 3, v)
	v, _ = s.Pop()
	assert.Equal(t, 2, v)
	_, err := s.Pop()
	assert.ErrorIs(t, err, ErrEmptyStack)

	s.Push(4)
	s.Clear()
	assert.Equal(t, 0, s.Len())
}
