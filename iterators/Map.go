package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
func Map[From, To any](i sequences.Iterator[From], transform func(From) (To, error)) *MapIter[From, To] {
	return &MapIter[From, To]{src: i, transform: transform}
}

type MapIter[From, To any] struct {
	src       sequences.Iterator[From]
	transform func(From) (To, error)

	value To
	err   error
}

func (mi *MapIter[From, To]) Close() error {
	return mi.src.Close()
}

func (mi *MapIter[From, To]) Err() error {
	if mi.err != nil {
		return mi.err
	}
	return mi.src.Err()
}

func (mi *MapIter[From, To]) Next() bool {
	if mi.err != nil {
		return false
	}

	if !mi.src.Next() {
		return false
	}

	v, err := mi.transform(mi.src.Value())
	if err != nil {
		mi.err = err
		return false
	}

	mi.value = v
	return true
}

func (mi *MapIter[From, To]) Value() To {
	return mi.value
}
