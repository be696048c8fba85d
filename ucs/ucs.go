package ucs

import (
	"errors"

	"github.com/katalvlaran/frontier/search"
	"github.com/katalvlaran/frontier/stablesort"
)

// ErrNilProblem is returned when a nil problem value is passed to Search.
var ErrNilProblem = errors.New("ucs: problem is nil")

// policy keeps the frontier sorted by path cost. Merge relies on rest
// already being sorted — an invariant the policy itself established on
// every previous call, starting from the single-root frontier.
type policy[S comparable, A any] struct{}

// Merge stably sorts the children by path cost (ties keep successor
// order), then interleaves them into rest with one linear pass.
// On equal costs the pre-existing frontier entry goes first.
func (policy[S, A]) Merge(children, rest []*search.Node[S, A]) []*search.Node[S, A] {
	// 1) Order this expansion's children among themselves. Insertion sort
	//    is O(n²) but n is bounded by the branching factor.
	stablesort.ByKey(children,
		func(n *search.Node[S, A]) float64 { return n.PathCost },
		func(a, b float64) bool { return a < b },
	)

	// 2) Linear interleave of two sorted runs, O(|children| + |rest|).
	merged := make([]*search.Node[S, A], 0, len(children)+len(rest))
	i, j := 0, 0
	for i < len(children) && j < len(rest) {
		// Strictly smaller takes precedence; ties favor rest.
		if children[i].PathCost < rest[j].PathCost {
			merged = append(merged, children[i])
			i++
		} else {
			merged = append(merged, rest[j])
			j++
		}
	}
	merged = append(merged, children[i:]...)

	return append(merged, rest[j:]...)
}

// Search runs uniform-cost search from start over p: nodes are expanded
// in non-decreasing path-cost order, so the first dequeued goal is the
// cheapest one reachable by tree-search exploration. The heuristic is the
// zero function, which makes this Dijkstra's algorithm rather than A*.
func Search[S comparable, A any](start S, p search.Problem[S, A]) (search.Result[A], error) {
	if p == nil {
		return search.Result[A]{}, ErrNilProblem
	}

	return search.Run(start, p, policy[S, A]{}, search.Zero[S]), nil
}
