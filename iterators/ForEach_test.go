package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func TestForEach(suite *testing.T) {
	suite.Run(`the block receives every value, in order`, func(t *testing.T) {
		t.Parallel()

		var vs []string
		err := iterators.ForEach[string](sequences.NewABC().Iterate(), func(v string) error {
			vs = append(vs, v)
			return nil
		})

		require.Nil(t, err)
		require.Equal(t, []string{"a", "b", "c"}, vs)
	})

	suite.Run(`returning Break stops the iteration without an error`, func(t *testing.T) {
		t.Parallel()

		var vs []int
		err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3, 4, 5}), func(v int) error {
			vs = append(vs, v)
			if 3 <= len(vs) {
				return iterators.Break
			}
			return nil
		})

		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 3}, vs)
	})

	suite.Run(`returning any other error stops the iteration and propagates it`, func(t *testing.T) {
		t.Parallel()

		expected := errors.New(`boom`)

		var total int
		err := iterators.ForEach[int](iterators.Slice([]int{1, 2, 3}), func(v int) error {
			total++
			return expected
		})

		require.Equal(t, expected, err)
		require.Equal(t, 1, total)
	})

	suite.Run(`the iterator is closed afterwards`, func(t *testing.T) {
		t.Parallel()

		var closed bool
		stub := iterators.NewStub[int](iterators.Slice([]int{42}))
		stub.StubClose = func() error {
			closed = true
			return nil
		}

		require.Nil(t, iterators.ForEach[int](stub, func(int) error { return nil }))
		require.True(t, closed)
	})
}
