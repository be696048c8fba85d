// Package stablesort provides a generic stable insertion sort, plain and
// keyed, for short slices whose ordering is given by a caller predicate.
//
// What
//
//   - Insertion(items, before): sorts items in place so that
//     before(items[i+1], items[i]) is false for every adjacent pair,
//     preserving the relative order of elements neither of which
//     precedes the other.
//   - ByKey(items, key, before): the keyed variant — composes a key
//     extractor with a predicate over keys.
//
// Why
//
//	Uniform-cost search sorts one expansion's children by path cost before
//	interleaving them into the frontier. Children counts are bounded by the
//	branching factor, so the O(n²) of insertion sort never bites, and its
//	stability is exactly the tie-breaking rule the strategy needs: equal
//	costs keep successor order.
//
// Precondition
//
//	before must be transitive and total over the slice's elements. When it
//	is not, the output is an unspecified but deterministic permutation of
//	the input — never an error.
//
// Complexity
//
//   - Time:   O(n²) comparisons worst case, O(n) when already sorted.
//   - Memory: O(1) — in place, no allocations.
//
// Usage
//
//	stablesort.Insertion(words, func(a, b string) bool { return len(a) < len(b) })
//	stablesort.ByKey(nodes, cost, func(a, b float64) bool { return a < b })
package stablesort
