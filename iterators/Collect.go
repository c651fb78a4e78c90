package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Collect drains the iterator into a slice and closes it.
func Collect[T any](i sequences.Iterator[T]) (vs []T, err error) {
	defer func() {
		closeErr := i.Close()
		if err == nil {
			err = closeErr
		}
	}()

	for i.Next() {
		vs = append(vs, i.Value())
	}

	return vs, i.Err()
}
