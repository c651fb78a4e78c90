package iterators

import (
	"github.com/adamluzsi/sequences"
)

// First returns the first element of the iterator and closes it.
// When the iteration yields nothing, it fails with ErrNotFound.
func First[T any](i sequences.Iterator[T]) (v T, err error) {
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

	return i.Value(), i.Err()
}
