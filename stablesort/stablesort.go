package stablesort

// Insertion sorts items in place under the strict "may precede" predicate
// before, keeping the relative input order of elements that compare equal
// (neither precedes the other). Stability comes from shifting only while
// the inserted element strictly precedes its left neighbor.
//
// before must be transitive and total; otherwise the result is an
// unspecified but deterministic permutation of the input.
func Insertion[T any](items []T, before func(a, b T) bool) {
	for i := 1; i < len(items); i++ {
		cur := items[i]
		j := i - 1
		for j >= 0 && before(cur, items[j]) {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = cur
	}
}

// ByKey sorts items in place by the keys extracted with key, compared
// under before. It is Insertion composed with a key extractor; stability
// and the precondition on before carry over unchanged.
func ByKey[T any, K any](items []T, key func(T) K, before func(a, b K) bool) {
	Insertion(items, func(a, b T) bool { return before(key(a), key(b)) })
}
