package iterators_test

import (
	"fmt"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func ExampleEnumerate() {
	iter := iterators.Enumerate(iterators.Slice([]string{"a", "b", "c", "d", "e"}))
	defer iter.Close()

	for iter.Next() {
		pair := iter.Value()
		fmt.Printf("item #%d is %s\n", pair.Index, pair.Value)
	}

	// Output:
	// item #0 is a
	// item #1 is b
	// item #2 is c
	// item #3 is d
	// item #4 is e
}

func ExampleContains() {
	abc := sequences.NewABC()

	found, _ := iterators.Contains(abc.Iterate(), "a")
	fmt.Println(found)

	found, _ = iterators.Contains(abc.Iterate(), "z")
	fmt.Println(found)

	// Output:
	// true
	// false
}

func ExampleReverse() {
	iter := iterators.Reverse[string](sequences.NewABC())
	defer iter.Close()

	for iter.Next() {
		fmt.Println(iter.Value())
	}

	// Output:
	// c
	// b
	// a
}
