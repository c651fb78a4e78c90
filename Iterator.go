package sequences

import (
	"io"
)

// Iterator is the protocol for lazily traversing values one by one.
// The consumer of an Iterator never learns where the values come from,
// so the same consumer code works over an in-memory container,
// a database cursor or any other source.
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
type Iterator[V any] interface {
	// Closer is required to make it able to cancel iterators where resources are being used behind the scene.
	// For iterators over plain in-memory values it should simply return nil.
	io.Closer
	// Err return the error cause of a failed iteration.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false
	// and ensure Err() will return the error cause if there was one.
	Next() bool
	// Value returns the current value in the iterator.
	// The action should be repeatable without side effects.
	Value() V
}
