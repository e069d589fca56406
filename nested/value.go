package nested

// Value is one node of a nested sequence: either a single leaf item, or a
// branch holding an ordered list of further values. The zero Value is a leaf
// holding the zero value of T.
type Value[T any] struct {
	item     T
	children []Value[T]
	branch   bool
}

// Leaf wraps a single item.
func Leaf[T any](item T) Value[T] {
	return Value[T]{item: item}
}

// Branch groups values into one nesting level. A branch with no children
// contributes nothing to a flattened result.
func Branch[T any](children ...Value[T]) Value[T] {
	return Value[T]{children: children, branch: true}
}

// Items wraps each item as a leaf and groups them into a branch.
// Shorthand for Branch(Leaf(items[0]), Leaf(items[1]), ...).
func Items[T any](items ...T) Value[T] {
	children := make([]Value[T], len(items))
	for i, item := range items {
		children[i] = Leaf(item)
	}
	return Value[T]{children: children, branch: true}
}

// IsBranch reports whether the value is a branch.
func (v Value[T]) IsBranch() bool {
	return v.branch
}

// Item returns the leaf item. For a branch it returns the zero value of T.
func (v Value[T]) Item() T {
	return v.item
}

// Children returns the branch children. For a leaf it returns nil.
func (v Value[T]) Children() []Value[T] {
	return v.children
}
