package sequences

// FromSlice wraps a slice into the Sequence protocol.
//
// It is the counterpart of ABC in the exercise:
// a container with the protocol implemented in full,
// including the range lookup that ABC deliberately refuses.
// Comparing the two shows what the built in containers give you for free.
func FromSlice[V any](values []V) SliceSequence[V] {
	return SliceSequence[V]{values: values}
}

// SliceSequence is a slice behind the Sequence protocol.
// The wrapped slice must not be mutated after construction.
type SliceSequence[V any] struct {
	values []V
}

func (s SliceSequence[V]) Len() int {
	return len(s.values)
}

func (s SliceSequence[V]) At(index int) (V, error) {
	if index < 0 || len(s.values) <= index {
		var zero V
		return zero, ErrOutOfRange.F("%d is out of range of the sequence", index)
	}
	return s.values[index], nil
}

// Slice returns a copy of the [low:high) subrange.
// Unlike ABC, a slice backed sequence can afford range lookups.
func (s SliceSequence[V]) Slice(low, high int) ([]V, error) {
	if low < 0 || high < low || len(s.values) < high {
		return nil, ErrOutOfRange.F("[%d:%d] is not a valid subrange of the sequence", low, high)
	}

	out := make([]V, high-low)
	copy(out, s.values[low:high])
	return out, nil
}

func (s SliceSequence[V]) Iterate() Iterator[V] {
	return &seqIter[V]{seq: s}
}
