package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Contains reports whether the iteration yields the given value.
// It is the generic form of the membership test,
// any iterable source supports it, regardless of the concrete container type.
func Contains[T comparable](i sequences.Iterator[T], v T) (ok bool, err error) {
	defer func() {
		cErr := i.Close()
		if err == nil {
			err = cErr
		}
	}()

	for i.Next() {
		if i.Value() == v {
			return true, nil
		}
	}

	return false, i.Err()
}
