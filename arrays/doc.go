/*
Package arrays provides typesafe slice construction helpers and bidirectional
cursors over fixed slices.

A [Cursor] tracks a single integer position into a borrowed slice and moves
one step at a time in either direction:

	c := arrays.CursorOf("a", "b", "c")
	for c.HasNext() {
		item, _ := c.Next()
		fmt.Println(item)
	}

An [Iterable] wraps a slice and hands out a fresh, independent [Cursor] on
every [Iterable.Cursor] call, so the same data can be traversed repeatedly
or by several cursors at once.

Cursors never mutate the underlying slice. Multiple cursors may read the same
slice concurrently, but mutating the slice while any cursor over it is live is
undefined behavior.
*/
package arrays
