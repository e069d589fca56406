package nested_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flatbed/nested"
)

func TestDeep_MixedDepth(t *testing.T) {
	got, err := nested.Deep(1, []any{2, 3}, []any{[]any{4}}, 5)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, 3, 4, 5}, got)
}

func TestDeep_TypedSlicesAndArrays(t *testing.T) {
	got, err := nested.Deep([]int{1, 2}, "x", [2]string{"y", "z"})
	require.NoError(t, err)
	require.Equal(t, []any{1, 2, "x", "y", "z"}, got)
}

func TestDeep_Empty(t *testing.T) {
	got, err := nested.Deep()
	require.NoError(t, err)
	require.Empty(t, got)
	require.NotNil(t, got)
}

func TestDeep_NilItem(t *testing.T) {
	t.Run("TopLevel", func(t *testing.T) {
		_, err := nested.Deep(1, nil, 3)
		require.ErrorIs(t, err, nested.ErrNilItem)
	})

	t.Run("Nested", func(t *testing.T) {
		_, err := nested.Deep([]any{1, []any{nil}})
		require.ErrorIs(t, err, nested.ErrNilItem)
	})

	t.Run("TypedNilIsLeaf", func(t *testing.T) {
		var p *int
		got, err := nested.Deep(1, p)
		require.NoError(t, err)
		require.Len(t, got, 2)
	})
}

func TestDeepSeq(t *testing.T) {
	t.Run("Order", func(t *testing.T) {
		var got []any
		for v, err := range nested.DeepSeq(1, []any{2, []any{3}}, 4) {
			require.NoError(t, err)
			got = append(got, v)
		}
		require.Equal(t, []any{1, 2, 3, 4}, got)
	})

	t.Run("NilTerminates", func(t *testing.T) {
		var got []any
		var gotErr error
		for v, err := range nested.DeepSeq(1, 2, nil, 4) {
			if err != nil {
				gotErr = err
				break
			}
			got = append(got, v)
		}
		require.ErrorIs(t, gotErr, nested.ErrNilItem)
		require.Equal(t, []any{1, 2}, got)
	})

	t.Run("EarlyStop", func(t *testing.T) {
		var got []any
		for v, err := range nested.DeepSeq([]any{1, 2, 3, 4}) {
			require.NoError(t, err)
			got = append(got, v)
			if len(got) == 2 {
				break
			}
		}
		require.Equal(t, []any{1, 2}, got)
	})
}

func TestDeepCount(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		n, err := nested.DeepCount()
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("MatchesDeepLength", func(t *testing.T) {
		inputs := [][]any{
			{1, 2, 3},
			{1, []any{2, 3}, []any{[]any{4}}, 5},
			{[]int{1, 2}, [0]int{}, "x"},
			{[]any{}},
		}
		for _, input := range inputs {
			flat, err := nested.Deep(input...)
			require.NoError(t, err)
			n, err := nested.DeepCount(input...)
			require.NoError(t, err)
			require.Equal(t, len(flat), n, "input %v", input)
		}
	})

	t.Run("NilItem", func(t *testing.T) {
		_, err := nested.DeepCount([]any{nil})
		require.ErrorIs(t, err, nested.ErrNilItem)
	})
}
