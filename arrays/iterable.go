package arrays

import (
	"iter"
	"slices"
)

/*
Iterable wraps a slice so it can be traversed bidirectionally any number of
times.

The slice is captured by reference, not copied. Every Cursor call returns a
brand-new cursor at the start; simultaneously live cursors are independent
and do not affect each other.
*/
type Iterable[T any] struct {
	items []T
}

// NewIterable wraps the given slice.
func NewIterable[T any](items []T) *Iterable[T] {
	return &Iterable[T]{items: items}
}

// IterableOf wraps the specified items.
func IterableOf[T any](items ...T) *Iterable[T] {
	return &Iterable[T]{items: items}
}

// Cursor returns a new cursor over the wrapped items, positioned at the start.
func (it *Iterable[T]) Cursor() *Cursor[T] {
	return NewCursor(it.items)
}

// CursorAt returns a new cursor over the wrapped items, beginning at the
// specified position.
func (it *Iterable[T]) CursorAt(pos int) *Cursor[T] {
	return NewCursorAt(it.items, pos)
}

// Len returns the number of wrapped items.
func (it *Iterable[T]) Len() int {
	return len(it.items)
}

// Seq returns a sequence over the wrapped items in order.
func (it *Iterable[T]) Seq() iter.Seq[T] {
	return slices.Values(it.items)
}
