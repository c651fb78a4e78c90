package sequences

// seqIter walks any Sequence front to back through its indexed access capability.
// For an in-memory sequence an At failure can only mean the end of the addressable range.
type seqIter[V any] struct {
	seq Sequence[V]

	closed bool
	index  int
	value  V
}

func (i *seqIter[V]) Close() error {
	i.closed = true
	return nil
}

func (i *seqIter[V]) Err() error {
	return nil
}

func (i *seqIter[V]) Next() bool {
	if i.closed {
		return false
	}

	v, err := i.seq.At(i.index)
	if err != nil {
		return false
	}

	i.value = v
	i.index++
	return true
}

func (i *seqIter[V]) Value() V {
	return i.value
}
