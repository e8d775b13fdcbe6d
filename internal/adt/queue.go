package adt

import "errors"

var (
	ErrQueueFull  = errors.New("queue is full")
	ErrQueueEmpty = errors.New("queue is empty")
)

// CircularQueue is a fixed-capacity FIFO queue with wraparound indices.
type CircularQueue[T any] struct {
	items []T
	front int
	count int
}

func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &CircularQueue[T]{items: make([]T, capacity)}
}

func (q *CircularQueue[T]) Len() int {
	return q.count
}

func (q *CircularQueue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *CircularQueue[T]) IsFull() bool {
	return q.count >= len(q.items)
}

func (q *CircularQueue[T]) Append(item T) error {
	if q.IsFull() {
		return ErrQueueFull
	}
	rear := (q.front + q.count) % len(q.items)
	q.items[rear] = item
	q.count++
	return nil
}

func (q *CircularQueue[T]) Serve() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrQueueEmpty
	}
	item := q.items[q.front]
	q.items[q.front] = zero
	q.front = (q.front + 1) % len(q.items)
	q.count--
	return item, nil
}

func (q *CircularQueue[T]) Peek() (T, error) {
	var zero T
	if q.IsEmpty() {
		return zero, ErrQueueEmpty
	}
	return q.items[q.front], nil
}
