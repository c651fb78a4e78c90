package sequences

// Sequence is the protocol of an ordered collection:
// it knows its own length, serves lookups by index position,
// and can be iterated from the first element to the last.
//
// Every Sequence is iterable through Iterate,
// but an Iterator alone is not a Sequence,
// since a bare value stream has no known length and no random access.
type Sequence[V any] interface {
	// Len reports how many elements the sequence holds.
	Len() int
	// At returns the element stored at the given index position.
	// Indexes outside the addressable range fail with ErrOutOfRange.
	At(index int) (V, error)
	// Iterate returns a fresh iterator over the sequence elements in order.
	// Each call must return an independent iterator, so iteration is restartable.
	Iterate() Iterator[V]
}
