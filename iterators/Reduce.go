package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Reduce folds the iterator into a single value, starting from the initial one.
func Reduce[R, T any](i sequences.Iterator[T], initial R, blk func(R, T) R) (rv R, rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr != nil {
			return
		}
		rErr = cErr
	}()

	var v = initial
	for i.Next() {
		v = blk(v, i.Value())
	}
	return v, i.Err()
}
