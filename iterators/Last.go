package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Last drains the iterator and returns the element the final iteration yielded.
// When the iteration yields nothing, it fails with ErrNotFound.
func Last[T any](i sequences.Iterator[T]) (v T, err error) {
	defer func() {
		cErr := i.Close()

		if err == nil && cErr != nil {
			err = cErr
		}
	}()

	iterated := false

	for i.Next() {
		iterated = true
		v = i.Value()
	}

	if err := i.Err(); err != nil {
		return v, err
	}

	if !iterated {
		return v, sequences.ErrNotFound
	}

	return v, nil
}
