package sequences

// NewABC returns the example container of this package:
// a fixed sequence that always holds the symbols "a", "b" and "c", in that order.
func NewABC() ABC {
	return ABC{}
}

// ABC is an immutable, order-preserving sequence of exactly three symbols.
// It is a plain value type with zero state,
// its whole behavior is derived from the fixed content.
//
// ABC implements the Sequence protocol (Len, At, Iterate),
// while range lookups are left out on purpose:
// Slice always fails with ErrNotSupported.
// The gap is the point of the exercise,
// it shows how a partially implemented protocol behaves
// next to a complete built in container.
type ABC struct{}

// Len reports the length of the sequence.
// ABC is a fixed length sequence, so this is always 3.
func (ABC) Len() int {
	return 3
}

// At returns the symbol stored at the given index position.
// Valid index positions are 0, 1 and 2,
// every other integer fails with ErrOutOfRange carrying the offending index.
func (ABC) At(index int) (string, error) {
	switch index {
	case 0:
		return "a", nil
	case 1:
		return "b", nil
	case 2:
		return "c", nil
	default:
		return "", ErrOutOfRange.F("%d is out of range of the ABC sequence", index)
	}
}

// Slice would return a contiguous subrange of the sequence, but ABC doesn't support it.
// The call fails with ErrNotSupported for any bounds.
func (ABC) Slice(low, high int) ([]string, error) {
	return nil, ErrNotSupported.F("ABC cannot return the [%d:%d] subrange of itself", low, high)
}

// Iterate returns a fresh iterator that yields "a", then "b", then "c".
// Every call returns an independent iterator, so the iteration is restartable.
func (abc ABC) Iterate() Iterator[string] {
	return &seqIter[string]{seq: abc}
}
