package dfs

import "github.com/katalvlaran/frontier/search"

// policy prepends newly expanded children at the frontier's head,
// turning the frontier into a stack: the newest branch is explored first.
type policy[S comparable, A any] struct{}

// Merge returns children ++ rest. The children slice is freshly allocated
// by Expand on every call, so appending rest onto it never aliases a
// previous frontier.
func (policy[S, A]) Merge(children, rest []*search.Node[S, A]) []*search.Node[S, A] {
	return append(children, rest...)
}

// Search runs depth-first search from start over p. It may find a deep
// solution before a shallow one, and it does not terminate on problems
// admitting an infinite acyclic path before the first goal.
func Search[S comparable, A any](start S, p search.Problem[S, A]) (search.Result[A], error) {
	if p == nil {
		return search.Result[A]{}, ErrNilProblem
	}

	return search.Run(start, p, policy[S, A]{}, search.Zero[S]), nil
}
