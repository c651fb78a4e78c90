package sequences

import "github.com/adamluzsi/sequences/consterror"

const (
	// ErrOutOfRange is returned when an index position is not addressable by the sequence.
	ErrOutOfRange consterror.Error = "OutOfRange"
	// ErrNotSupported is returned when a capability is deliberately not implemented by the container.
	ErrNotSupported consterror.Error = "NotSupported"
	// ErrNotFound is returned when an element was expected but the iteration yielded none.
	ErrNotFound consterror.Error = "NotFound"
)
