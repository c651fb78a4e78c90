package iterators_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func TestMin(suite *testing.T) {
	suite.Run(`over the fixed sequence`, func(t *testing.T) {
		t.Parallel()

		v, err := iterators.Min(sequences.NewABC().Iterate())
		require.Nil(t, err)
		require.Equal(t, "a", v)
	})

	suite.Run(`over an unordered iteration`, func(t *testing.T) {
		t.Parallel()

		v, err := iterators.Min[int](iterators.Slice([]int{42, -3, 7}))
		require.Nil(t, err)
		require.Equal(t, -3, v)
	})

	suite.Run(`when the iteration is empty`, func(t *testing.T) {
		t.Parallel()

		_, err := iterators.Min[int](iterators.Empty[int]())
		require.True(t, errors.Is(err, sequences.ErrNotFound))
	})

	suite.Run(`when the iteration fails`, func(t *testing.T) {
		t.Parallel()

		expected := errors.New(`boom`)

		_, err := iterators.Min[int](iterators.NewError[int](expected))
		require.Equal(t, expected, err)
	})
}

func TestMax(suite *testing.T) {
	suite.Run(`over the fixed sequence`, func(t *testing.T) {
		t.Parallel()

		v, err := iterators.Max(sequences.NewABC().Iterate())
		require.Nil(t, err)
		require.Equal(t, "c", v)
	})

	suite.Run(`over an unordered iteration`, func(t *testing.T) {
		t.Parallel()

		v, err := iterators.Max[int](iterators.Slice([]int{42, -3, 7}))
		require.Nil(t, err)
		require.Equal(t, 42, v)
	})

	suite.Run(`when the iteration is empty`, func(t *testing.T) {
		t.Parallel()

		_, err := iterators.Max[int](iterators.Empty[int]())
		require.True(t, errors.Is(err, sequences.ErrNotFound))
	})
}
