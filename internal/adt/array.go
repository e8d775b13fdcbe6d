package adt

import "fmt"

// ArrayR is a fixed-capacity referential array. Slots hold the zero
// value until set.
type ArrayR[T any] struct {
	items []T
}

func NewArrayR[T any](capacity int) *ArrayR[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &ArrayR[T]{items: make([]T, capacity)}
}

func (a *ArrayR[T]) Len() int {
	return len(a.items)
}

func (a *ArrayR[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(a.items) {
		return zero, fmt.Errorf("array index %d out of range [0, %d)", index, len(a.items))
	}
	return a.items[index], nil
}

func (a *ArrayR[T]) Set(index int, item T) error {
	if index < 0 || index >= len(a.items) {
		return fmt.Errorf("array index %d out of range [0, %d)", index, len(a.items))
	}
	a.items[index] = item
	return nil
}
