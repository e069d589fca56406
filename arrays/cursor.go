package arrays

import (
	"fmt"
	"iter"
)

var (
	ErrNoNextItem     = fmt.Errorf("no next item")
	ErrNoPreviousItem = fmt.Errorf("no previous item")
)

/*
Cursor is a bidirectional cursor over a fixed slice.

It borrows the slice and keeps a single position in [0, len]. Position i sits
between items i-1 and i: Next returns item i and moves right, Previous returns
item i-1 and moves left. The cursor never mutates the slice.
*/
type Cursor[T any] struct {
	items []T
	pos   int
}

// NewCursor creates a cursor over items positioned at the start.
func NewCursor[T any](items []T) *Cursor[T] {
	return &Cursor[T]{items: items}
}

// NewCursorAt creates a cursor over items beginning at the specified position.
// The position is not clamped; a position outside [0, len(items)] yields a
// cursor whose first Next or Previous call fails.
func NewCursorAt[T any](items []T, pos int) *Cursor[T] {
	return &Cursor[T]{items: items, pos: pos}
}

// CursorOf returns a cursor over the specified items, positioned at the start.
func CursorOf[T any](items ...T) *Cursor[T] {
	return NewCursor(items)
}

// HasNext reports whether a Next call would succeed.
func (c *Cursor[T]) HasNext() bool {
	return c.pos >= 0 && c.pos < len(c.items)
}

// Next returns the item at the current position and advances the cursor.
// If the cursor is exhausted, it returns ErrNoNextItem wrapped with the
// position and length of the traversed slice.
func (c *Cursor[T]) Next() (T, error) {
	if !c.HasNext() {
		var zero T
		return zero, fmt.Errorf("%w: position %d of %d", ErrNoNextItem, c.pos, len(c.items))
	}
	item := c.items[c.pos]
	c.pos++
	return item, nil
}

// HasPrevious reports whether a Previous call would succeed.
// It mirrors HasNext: a cursor at the start has no previous item.
func (c *Cursor[T]) HasPrevious() bool {
	return c.pos > 0 && c.pos <= len(c.items)
}

// Previous retreats the cursor and returns the item at the new position.
// If the cursor is at the start, it returns ErrNoPreviousItem wrapped with
// the position and length of the traversed slice.
func (c *Cursor[T]) Previous() (T, error) {
	if !c.HasPrevious() {
		var zero T
		return zero, fmt.Errorf("%w: position %d of %d", ErrNoPreviousItem, c.pos, len(c.items))
	}
	c.pos--
	return c.items[c.pos], nil
}

// Index returns the current position of the cursor.
func (c *Cursor[T]) Index() int {
	return c.pos
}

// Clone creates an independent copy of the cursor at the same position.
func (c *Cursor[T]) Clone() *Cursor[T] {
	return &Cursor[T]{items: c.items, pos: c.pos}
}

// Seq returns a sequence of the remaining items in forward order.
// The cursor itself is not moved.
func (c *Cursor[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := max(c.pos, 0); i < len(c.items); i++ {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// BackwardSeq returns a sequence of the items before the cursor in reverse
// order, the same items successive Previous calls would return.
// The cursor itself is not moved.
func (c *Cursor[T]) BackwardSeq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := min(c.pos, len(c.items)) - 1; i >= 0; i-- {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// String returns a string representation of the cursor.
func (c *Cursor[T]) String() string {
	return fmt.Sprintf("Cursor[%d/%d]", c.pos, len(c.items))
}
