package stablesort_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/frontier/stablesort"
)

func intLess(a, b int) bool { return a < b }

// TestInsertion_OrderAndPermutation checks the two halves of the sort
// contract: adjacent pairs respect the predicate, and the output is a
// permutation of the input.
func TestInsertion_OrderAndPermutation(t *testing.T) {
	cases := [][]int{
		{},
		{1},
		{2, 1},
		{3, 1, 2, 1, 3, 0},
		{5, 4, 3, 2, 1},
		{1, 2, 3, 4, 5},
		{7, 7, 7},
	}
	for _, input := range cases {
		got := append([]int(nil), input...)
		stablesort.Insertion(got, intLess)

		for i := 0; i+1 < len(got); i++ {
			if intLess(got[i+1], got[i]) {
				t.Errorf("input %v: adjacent order violated at %d: %v", input, i, got)
			}
		}

		want := append([]int(nil), input...)
		sort.Ints(want)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("input %v: got %v; want permutation %v", input, got, want)
		}
	}
}

// pair carries a payload so equal keys stay distinguishable.
type pair struct {
	key int
	tag string
}

// TestInsertion_Stability: equal-keyed elements preserve relative input order.
func TestInsertion_Stability(t *testing.T) {
	input := []pair{
		{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}, {2, "e"},
	}
	stablesort.Insertion(input, func(a, b pair) bool { return a.key < b.key })

	want := []pair{{1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "e"}}
	if !reflect.DeepEqual(input, want) {
		t.Errorf("stability violated: got %v; want %v", input, want)
	}
}

// TestByKey composes a key extractor with the predicate.
func TestByKey(t *testing.T) {
	words := []string{"kiwi", "fig", "banana", "plum"}
	stablesort.ByKey(words, func(s string) int { return len(s) }, intLess)

	want := []string{"fig", "kiwi", "plum", "banana"}
	if !reflect.DeepEqual(words, want) {
		t.Errorf("ByKey = %v; want %v", words, want)
	}
}

// TestInsertion_NonTotalPredicate: a predicate that is not a total order
// still yields a deterministic permutation, never a panic or loss.
func TestInsertion_NonTotalPredicate(t *testing.T) {
	// "before" that contradicts itself on purpose
	flaky := func(a, b int) bool { return a%3 < b%2 }

	first := []int{9, 4, 6, 2, 8, 5, 1}
	second := append([]int(nil), first...)
	stablesort.Insertion(first, flaky)
	stablesort.Insertion(second, flaky)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("non-total predicate must stay deterministic: %v vs %v", first, second)
	}

	// still a permutation of the input
	gotSorted := append([]int(nil), first...)
	sort.Ints(gotSorted)
	if want := []int{1, 2, 4, 5, 6, 8, 9}; !reflect.DeepEqual(gotSorted, want) {
		t.Errorf("elements lost or invented: %v", first)
	}
}
