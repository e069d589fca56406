package nested

import "iter"

// Flatten returns every leaf reachable from values in depth-first,
// left-to-right order. With no arguments it returns an empty slice.
func Flatten[T any](values ...Value[T]) []T {
	return AppendFlat(make([]T, 0, len(values)), values...)
}

// AppendFlat appends every leaf reachable from values to dst, in depth-first
// left-to-right order, and returns the extended slice. Prior contents of dst
// are preserved, so results of several calls can be accumulated:
//
//	flat := nested.AppendFlat(nil, first...)
//	flat = nested.AppendFlat(flat, second...)
func AppendFlat[T any](dst []T, values ...Value[T]) []T {
	for _, v := range values {
		if v.branch {
			dst = AppendFlat(dst, v.children...)
		} else {
			dst = append(dst, v.item)
		}
	}
	return dst
}

// Seq returns a lazy sequence of every leaf reachable from values in
// depth-first, left-to-right order. No intermediate slice is allocated.
// The sequence is restartable: each range over it traverses from the start.
func Seq[T any](values ...Value[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		yieldLeaves(values, yield)
	}
}

// yieldLeaves reports whether the traversal ran to completion.
func yieldLeaves[T any](values []Value[T], yield func(T) bool) bool {
	for _, v := range values {
		if v.branch {
			if !yieldLeaves(v.children, yield) {
				return false
			}
			continue
		}
		if !yield(v.item) {
			return false
		}
	}
	return true
}

// Count returns the total number of leaves reachable from values, without
// materializing them. For every input, Count(v...) == len(Flatten(v...)).
func Count[T any](values ...Value[T]) int {
	n := 0
	for _, v := range values {
		if v.branch {
			n += Count(v.children...)
		} else {
			n++
		}
	}
	return n
}
