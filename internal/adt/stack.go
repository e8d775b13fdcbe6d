package adt

import "errors"

var (
	ErrStackFull  = errors.New("stack is full")
	ErrStackEmpty = errors.New("stack is empty")
)

// Stack is a fixed-capacity LIFO stack backed by an array.
type Stack[T any] struct {
	items []T
	top   int
}

func NewStack[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Stack[T]{items: make([]T, capacity), top: -1}
}

func (s *Stack[T]) Len() int {
	return s.top + 1
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top < 0
}

func (s *Stack[T]) IsFull() bool {
	return s.top+1 >= len(s.items)
}

func (s *Stack[T]) Push(item T) error {
	if s.IsFull() {
		return ErrStackFull
	}
	s.top++
	s.items[s.top] = item
	return nil
}

func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrStackEmpty
	}
	item := s.items[s.top]
	s.items[s.top] = zero
	s.top--
	return item, nil
}

func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if s.IsEmpty() {
		return zero, ErrStackEmpty
	}
	return s.items[s.top], nil
}
