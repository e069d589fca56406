/*
Package nested flattens arbitrarily deep nested sequences into a single flat
slice of leaf items, preserving depth-first left-to-right order.

Two input models are supported:

  - **Typed**: the caller builds a tree of [Value] nodes with [Leaf] and
    [Branch] and flattens it with [Flatten], [AppendFlat], [Seq] or [Count].
    Classification is explicit, no reflection is involved, and no errors can
    occur.
  - **Deep**: heterogeneous input of type any, where every element whose
    runtime kind is a slice or array counts as a branch and everything else
    as a leaf. [Deep], [DeepSeq] and [DeepCount] descend via reflection. A
    nil interface element cannot be classified and fails with [ErrNilItem].

For every input, the leaf count reported by [Count] (or [DeepCount]) equals
the length of the flattened result.

# Limits

Flattening recurses once per nesting level. Depth is bounded only by the
goroutine stack; there is no artificial depth limit. Inputs must be trees:
a deep input containing a cycle recurses forever.
*/
package nested
