package pawnpad

import "errors"

// Stack is a bounded LIFO; pushing past the limit drops the oldest entry.
type Stack[T any] struct {
	data []T
	size int
}

func NewStack[T any](size int) *Stack[T] {
	if size <= 0 {
		size = 1
	}
	return &Stack[T]{data: make([]T, 0, size), size: size}
}

var (
	ErrEmptyStack = errors.New("empty stack")
)

func (s *Stack[T]) Pop() (T, error) {
	if len(s.data) == 0 {
		return *new(T), ErrEmptyStack
	}
	last := s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return last, nil
}

func (s *Stack[T]) Top() (T, error) {
	if len(s.data) == 0 {
		return *new(T), ErrEmptyStack
	}
	last := s.data[len(s.data)-1]
	return last, nil
}

func (s *Stack[T]) Push(e T) {
	if len(s.data) == s.size {
		copy(s.data, s.data[1:])
		s.data = s.data[:len(s.data)-1]
	}
	s.data = append(s.data, e)
}

func (s *Stack[T]) Len() int { return len(s.data) }

func (s *Stack[T]) Clear() { s.data = s.data[:0] }
