package iterators

// NewError returns an iterator that has no values and only reports the given error.
// This can be used when an external resource encounter an unexpected,
// non recoverable failure during query execution,
// but the signature still asks for an iterator.
func NewError[T any](err error) *ErrorIter[T] {
	return &ErrorIter[T]{err}
}

type ErrorIter[T any] struct {
	err error
}

func (i *ErrorIter[T]) Close() error {
	return nil
}

func (i *ErrorIter[T]) Next() bool {
	return false
}

func (i *ErrorIter[T]) Err() error {
	return i.err
}

func (i *ErrorIter[T]) Value() T {
	var v T
	return v
}
