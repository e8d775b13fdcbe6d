package adt

import "fmt"

// ListItem pairs a value with its sort key. SubKey breaks ties between
// equal primary keys so insertion order stays stable.
type ListItem[T any] struct {
	Value  T
	Key    float64
	SubKey float64
}

func (it ListItem[T]) less(other ListItem[T]) bool {
	if it.Key != other.Key {
		return it.Key < other.Key
	}
	return it.SubKey < other.SubKey
}

// SortedList keeps items in ascending key order. Add finds the insert
// position with a binary search and shifts the tail right.
type SortedList[T any] struct {
	items []ListItem[T]
}

func NewSortedList[T any](capacity int) *SortedList[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &SortedList[T]{items: make([]ListItem[T], 0, capacity)}
}

func (l *SortedList[T]) Len() int {
	return len(l.items)
}

func (l *SortedList[T]) IsEmpty() bool {
	return len(l.items) == 0
}

func (l *SortedList[T]) Add(item ListItem[T]) {
	pos := l.indexOf(item)
	l.items = append(l.items, ListItem[T]{})
	copy(l.items[pos+1:], l.items[pos:])
	l.items[pos] = item
}

func (l *SortedList[T]) Get(index int) (ListItem[T], error) {
	if index < 0 || index >= len(l.items) {
		return ListItem[T]{}, fmt.Errorf("sorted list index %d out of range [0, %d)", index, len(l.items))
	}
	return l.items[index], nil
}

func (l *SortedList[T]) DeleteAt(index int) (ListItem[T], error) {
	if index < 0 || index >= len(l.items) {
		return ListItem[T]{}, fmt.Errorf("sorted list index %d out of range [0, %d)", index, len(l.items))
	}
	item := l.items[index]
	copy(l.items[index:], l.items[index+1:])
	l.items = l.items[:len(l.items)-1]
	return item, nil
}

func (l *SortedList[T]) Clear() {
	l.items = l.items[:0]
}

// indexOf returns the first position whose item does not sort before the
// candidate.
func (l *SortedList[T]) indexOf(item ListItem[T]) int {
	lo, hi := 0, len(l.items)
	for lo < hi {
		mid := (lo + hi) / 2
		if l.items[mid].less(item) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
