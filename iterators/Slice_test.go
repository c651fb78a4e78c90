package iterators_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

var _ sequences.Iterator[string] = iterators.Slice([]string{"A", "B", "C"})

func TestSlice_SliceGiven_ValuesYieldedInOrder(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42, 4, 2})

	require.True(t, i.Next())
	require.Equal(t, 42, i.Value())

	require.True(t, i.Next())
	require.Equal(t, 4, i.Value())

	require.True(t, i.Next())
	require.Equal(t, 2, i.Value())

	require.False(t, i.Next())
	require.Nil(t, i.Err())
	require.Nil(t, i.Close())
}

func TestSlice_Closed_NoMoreValuesYielded(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42, 4, 2})

	require.Nil(t, i.Close())
	require.False(t, i.Next())
}

func TestSlice_CloseCalledMultipleTimes_NoErrorReturned(t *testing.T) {
	t.Parallel()

	i := iterators.Slice([]int{42})

	for index := 0; index < 42; index++ {
		require.Nil(t, i.Close())
	}
}
