package iterators

import (
	"github.com/adamluzsi/sequences"
)

// Enumerate pairs every yielded value with its zero based iteration position.
//
// Do you find yourself keeping a counter variable next to the loop,
// and incrementing it by hand at the end of each iteration?
// Enumerate removes that bookkeeping:
//
//	iter := iterators.Enumerate(iterators.Slice([]string{"a", "b", "c"}))
//	for iter.Next() {
//		p := iter.Value()
//		fmt.Printf("item #%d is %s\n", p.Index, p.Value)
//	}
func Enumerate[V any](i sequences.Iterator[V]) *EnumerateIter[V] {
	return &EnumerateIter[V]{src: i}
}

// Indexed is a value paired together with its iteration position.
type Indexed[V any] struct {
	Index int
	Value V
}

type EnumerateIter[V any] struct {
	src sequences.Iterator[V]

	index int
	value Indexed[V]
}

func (ei *EnumerateIter[V]) Close() error {
	return ei.src.Close()
}

func (ei *EnumerateIter[V]) Err() error {
	return ei.src.Err()
}

func (ei *EnumerateIter[V]) Next() bool {
	if !ei.src.Next() {
		return false
	}

	ei.value = Indexed[V]{Index: ei.index, Value: ei.src.Value()}
	ei.index++
	return true
}

func (ei *EnumerateIter[V]) Value() Indexed[V] {
	return ei.value
}
