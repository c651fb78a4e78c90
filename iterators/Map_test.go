package iterators_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func TestMap(suite *testing.T) {
	suite.Run(`values are transformed during iteration`, func(t *testing.T) {
		t.Parallel()

		i := iterators.Map(sequences.NewABC().Iterate(), func(v string) (string, error) {
			return strings.ToUpper(v), nil
		})

		vs, err := iterators.Collect[string](i)
		require.Nil(t, err)
		require.Equal(t, []string{"A", "B", "C"}, vs)
	})

	suite.Run(`the element type can be changed`, func(t *testing.T) {
		t.Parallel()

		i := iterators.Map(iterators.Slice([]string{"1", "2", "42"}), strconv.Atoi)

		vs, err := iterators.Collect[int](i)
		require.Nil(t, err)
		require.Equal(t, []int{1, 2, 42}, vs)
	})

	suite.Run(`when the transform fails, the iteration stops with the failure cause`, func(t *testing.T) {
		t.Parallel()

		expected := errors.New(`boom`)

		i := iterators.Map(iterators.Slice([]int{1, 2, 3}), func(v int) (int, error) {
			if v == 2 {
				return 0, expected
			}
			return v * 10, nil
		})

		require.True(t, i.Next())
		require.Equal(t, 10, i.Value())

		require.False(t, i.Next())
		require.Equal(t, expected, i.Err())
		require.Nil(t, i.Close())
	})
}
