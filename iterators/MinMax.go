package iterators

import (
	"golang.org/x/exp/constraints"

	"github.com/adamluzsi/sequences"
)

// Min returns the smallest element the iteration yields.
// When the iteration yields nothing, it fails with ErrNotFound.
func Min[T constraints.Ordered](i sequences.Iterator[T]) (T, error) {
	return best(i, func(candidate, current T) bool {
		return candidate < current
	})
}

// Max returns the greatest element the iteration yields.
// When the iteration yields nothing, it fails with ErrNotFound.
func Max[T constraints.Ordered](i sequences.Iterator[T]) (T, error) {
	return best(i, func(candidate, current T) bool {
		return current < candidate
	})
}

func best[T constraints.Ordered](i sequences.Iterator[T], better func(candidate, current T) bool) (v T, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	if !i.Next() {
		if err := i.Err(); err != nil {
			return v, err
		}
		return v, sequences.ErrNotFound
	}

	v = i.Value()

	for i.Next() {
		if c := i.Value(); better(c, v) {
			v = c
		}
	}

	return v, i.Err()
}
