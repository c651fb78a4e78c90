// Command seqdemo walks through the iteration protocol exercise on the console.
// The output is free form narration for humans, not a machine readable contract.
package main

import (
	"fmt"

	"github.com/adamluzsi/sequences"
	"github.com/adamluzsi/sequences/iterators"
)

func main() {
	abc := sequences.NewABC()

	fmt.Println("Lets try and print out the sequence using its iterator.")
	iter := abc.Iterate()
	for iter.Next() {
		fmt.Println(iter.Value())
	}
	_ = iter.Close()

	fmt.Println("Lets get sequence items by index.")
	for _, index := range []int{0, 1, 2} {
		v, err := abc.At(index)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(v)
	}

	fmt.Println("Lets get the sequence items in reverse.")
	reverse := iterators.Reverse[string](abc)
	for reverse.Next() {
		fmt.Println(reverse.Value())
	}
	_ = reverse.Close()

	fmt.Println("Lets see if \"a\" is in our sequence using the membership check.")
	found, _ := iterators.Contains(abc.Iterate(), "a")
	fmt.Println(found)

	fmt.Println("Lets see if \"z\" is in our sequence using the membership check.")
	found, _ = iterators.Contains(abc.Iterate(), "z")
	fmt.Println(found)

	fmt.Println("Lets see if we can use max and min with our sequence.")
	max, _ := iterators.Max(abc.Iterate())
	min, _ := iterators.Min(abc.Iterate())
	fmt.Printf("max: %s min: %s\n", max, min)

	fmt.Println("Lets see if we can get the length of the sequence.")
	fmt.Printf("len: %d\n", abc.Len())

	fmt.Println("Lets try an index position that the sequence cannot serve.")
	if _, err := abc.At(3); err != nil {
		fmt.Printf("Oops, that didn't work: %s\n", err)
	}

	fmt.Println("Lets get a subset of the sequence using a range lookup.")
	if _, err := abc.Slice(0, 2); err != nil {
		fmt.Printf("Oops, that didn't work. ABC doesn't support range lookups:\n %s\n", err)
	}

	fmt.Println("Lets see if we can concatenate two of our sequences together.")
	fmt.Println("Oops, there is nothing to call. ABC doesn't implement concatenation,")
	fmt.Println("the workaround is to collect both sides into slices and append those.")

	// the same exercise over a container with the protocol implemented in full
	complete := sequences.FromSlice([]string{"a", "b", "c"})

	fmt.Println("Now lets see how a slice backed sequence does in the same tests.")
	iter = complete.Iterate()
	for iter.Next() {
		fmt.Println(iter.Value())
	}
	_ = iter.Close()

	fmt.Println("Lets get a subset of the slice backed sequence using a range lookup.")
	if subset, err := complete.Slice(0, 2); err == nil {
		fmt.Println(subset)
	}

	fmt.Println("Do you find yourself keeping a counter variable next to your loop?")
	fmt.Println("No need to worry, Enumerate is here to make your code cleaner.")
	enum := iterators.Enumerate(iterators.Slice([]string{"a", "b", "c", "d", "e"}))
	for enum.Next() {
		pair := enum.Value()
		fmt.Printf("item #%d is %s\n", pair.Index, pair.Value)
	}
	_ = enum.Close()
}
