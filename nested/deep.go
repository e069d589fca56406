package nested

import (
	"fmt"
	"iter"
	"reflect"
)

var ErrNilItem = fmt.Errorf("nil item cannot be classified as leaf or branch")

// Deep flattens heterogeneous input of arbitrary depth. Every item whose
// runtime kind is a slice or array is treated as a branch and descended into;
// every other item is a leaf. Leaves are returned in depth-first,
// left-to-right order.
//
// A nil interface item has no runtime type to classify and fails with
// ErrNilItem. Note that a typed nil (for example a nil *int) does carry a
// type and flattens as an ordinary leaf.
func Deep(items ...any) ([]any, error) {
	flat := make([]any, 0, len(items))
	for _, item := range items {
		var err error
		flat, err = deepAppend(flat, item)
		if err != nil {
			return nil, err
		}
	}
	return flat, nil
}

func deepAppend(dst []any, item any) ([]any, error) {
	if item == nil {
		return nil, ErrNilItem
	}
	rv := reflect.ValueOf(item)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return append(dst, item), nil
	}
	for i := 0; i < rv.Len(); i++ {
		var err error
		dst, err = deepAppend(dst, rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// DeepSeq is the lazy form of Deep. It yields (leaf, nil) pairs in
// depth-first, left-to-right order without allocating an intermediate slice.
// On a nil interface item it yields (nil, ErrNilItem) and terminates.
// The sequence is restartable.
func DeepSeq(items ...any) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		for _, item := range items {
			if !yieldDeep(item, yield) {
				return
			}
		}
	}
}

// yieldDeep reports whether iteration should continue.
func yieldDeep(item any, yield func(any, error) bool) bool {
	if item == nil {
		yield(nil, ErrNilItem)
		return false
	}
	rv := reflect.ValueOf(item)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return yield(item, nil)
	}
	for i := 0; i < rv.Len(); i++ {
		if !yieldDeep(rv.Index(i).Interface(), yield) {
			return false
		}
	}
	return true
}

// DeepCount returns the total number of leaves in heterogeneous input
// without materializing them. For every input on which Deep succeeds,
// DeepCount reports the length of Deep's result.
func DeepCount(items ...any) (int, error) {
	n := 0
	for _, item := range items {
		c, err := deepCount(item)
		if err != nil {
			return 0, err
		}
		n += c
	}
	return n, nil
}

func deepCount(item any) (int, error) {
	if item == nil {
		return 0, ErrNilItem
	}
	rv := reflect.ValueOf(item)
	if k := rv.Kind(); k != reflect.Slice && k != reflect.Array {
		return 1, nil
	}
	n := 0
	for i := 0; i < rv.Len(); i++ {
		c, err := deepCount(rv.Index(i).Interface())
		if err != nil {
			return 0, err
		}
		n += c
	}
	return n, nil
}
