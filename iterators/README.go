/*	Package iterators provide generic algorithms over the iteration protocol.



	Summary

	Everything in this package takes the sequences.Iterator or sequences.Sequence
	interface instead of a concrete container type.
	That is the whole trick behind generic operations like membership testing,
	min/max or reversing: the algorithm only relies on the capability interface,
	so the same code runs over the fixed ABC container,
	over a slice, or over a disk backed sequence without knowing which one it got.

	In a structurally typed language the runtime would resolve these capabilities
	at call time through protocol methods.
	Here the dispatch is explicit and checked at compile time,
	which also makes visible what happens when a capability is missing:
	there is simply no function to call.



	Resources

	https://en.wikipedia.org/wiki/Iterator_pattern

*/
package iterators
