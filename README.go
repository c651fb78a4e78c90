/*

Package sequences -> learning the iteration protocol by building one



What is a sequence?

A sequence is an iterable collection that also knows its own length
and can serve lookups by index position.
Built in examples for this are slices, arrays and strings.
Every sequence can be iterated, but not every iterable thing is a sequence.
A bufio.Scanner over STDIN for example can be iterated,
but it has no length and no way to jump to the 42th line directly.

In languages with structural typing these capabilities are protocol methods
that a runtime resolves at call time.
In go we spell the same thing out with small explicit interfaces,
and then generic algorithms work against the interface
instead of the concrete container type.
This package defines those interfaces (Iterator, Sequence),
and the iterators subpackage holds the generic algorithms
(membership check, min, max, reverse, enumerate and friends).



Why a three element container?

ABC is the example container of this package.
It always holds "a", "b" and "c", nothing more, nothing else.
Keeping the content fixed removes every distraction,
so what remains visible is purely the protocol:
what does it take for a custom type to act like a sequence,
and what happens when a capability is left out on purpose.
ABC deliberately refuses range lookups,
so you can observe how a partial protocol implementation behaves
compared to a complete built in container like a slice.

*/
package sequences
