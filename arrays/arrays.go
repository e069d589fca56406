package arrays

import "fmt"

var ErrNegativeSize = fmt.Errorf("negative size")

// New allocates a slice of the given length, filled with zero values.
// Returns ErrNegativeSize if length < 0.
func New[T any](length int) ([]T, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, length)
	}
	return make([]T, length), nil
}

// Of returns the slice implicitly created from its arguments.
// The caller gets the variadic backing slice itself, no copy is made.
func Of[T any](items ...T) []T {
	return items
}

// Map transforms a slice of type T to a slice of type R.
func Map[T any, R any](items []T, transform func(T) R) []R {
	if len(items) == 0 {
		return []R{}
	}
	// BCE hint: avoid bounds check in loop
	_ = items[len(items)-1]

	res := make([]R, len(items))
	for i, v := range items {
		res[i] = transform(v)
	}
	return res
}

// AllEqual reports whether all items are mutually equal.
// An empty argument list counts as equal.
func AllEqual[T comparable](items ...T) bool {
	if len(items) == 0 {
		return true
	}
	for _, v := range items[1:] {
		if v != items[0] {
			return false
		}
	}
	return true
}

// AllNil reports whether every argument is a nil interface value.
func AllNil(items ...any) bool {
	for _, v := range items {
		if v != nil {
			return false
		}
	}
	return true
}
