package iterators

import (
	"errors"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/consterror"
)

// Break can be returned from the ForEach block to stop the iteration early without an error.
const Break consterror.Error = `iterators:break`

// ForEach calls the block with every element the iterator yields, then closes the iterator.
func ForEach[T any](i sequences.Iterator[T], blk func(T) error) (rErr error) {
	defer func() {
		cErr := i.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()

	for i.Next() {
		if err := blk(i.Value()); err != nil {
			if errors.Is(err, Break) {
				break
			}
			return err
		}
	}

	return i.Err()
}
