package dfs

import "github.com/katalvlaran/frontier/search"

// limitedPolicy is the depth-first policy with branch pruning: children
// whose path cost exceeds limit are dropped before the prepend, so the
// subtree below them is never generated.
//
// The comparison is against PathCost, not Depth. On unit-cost domains the
// two coincide; on weighted domains the limit bounds accumulated cost.
type limitedPolicy[S comparable, A any] struct {
	limit float64
}

// Merge filters children by the limit, then returns kept ++ rest.
func (lp limitedPolicy[S, A]) Merge(children, rest []*search.Node[S, A]) []*search.Node[S, A] {
	kept := children[:0]
	for _, c := range children {
		if c.PathCost <= lp.limit {
			kept = append(kept, c)
		}
	}

	return append(kept, rest...)
}

// Limited runs depth-limited search from start over p: depth-first order,
// with every child beyond the path-cost limit pruned at merge time.
// An unsolved Result means no goal lies within the limit along any path
// the exploration reached — an ordinary outcome, not an error.
func Limited[S comparable, A any](start S, p search.Problem[S, A], limit float64) (search.Result[A], error) {
	if p == nil {
		return search.Result[A]{}, ErrNilProblem
	}
	if limit < 0 {
		return search.Result[A]{}, ErrBadLimit
	}

	return search.Run(start, p, limitedPolicy[S, A]{limit: limit}, search.Zero[S]), nil
}
