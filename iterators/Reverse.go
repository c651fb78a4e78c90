package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Reverse returns an iterator that walks a sequence from the last element to the first.
// Unlike the other functions in this package it requires the full Sequence protocol,
// since back to front traversal needs both the length and random access by index.
// A bare iterator is not enough here, the same way a one directional stream
// cannot be read backwards.
func Reverse[V any](seq sequences.Sequence[V]) *ReverseIter[V] {
	return &ReverseIter[V]{Seq: seq, index: seq.Len() - 1}
}

type ReverseIter[V any] struct {
	Seq sequences.Sequence[V]

	closed bool
	index  int
	value  V
	err    error
}

func (ri *ReverseIter[V]) Close() error {
	ri.closed = true
	return nil
}

func (ri *ReverseIter[V]) Err() error {
	return ri.err
}

func (ri *ReverseIter[V]) Next() bool {
	if ri.closed || ri.err != nil {
		return false
	}

	if ri.index < 0 {
		return false
	}

	v, err := ri.Seq.At(ri.index)
	if err != nil {
		ri.err = err
		return false
	}

	ri.value = v
	ri.index--
	return true
}

func (ri *ReverseIter[V]) Value() V {
	return ri.value
}
