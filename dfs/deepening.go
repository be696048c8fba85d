package dfs

import "github.com/katalvlaran/frontier/search"

// IterativeDeepening runs depth-limited search with limit 1, 2, 3, …,
// stopping at the first limit whose result is solved. The returned
// Result carries that solution and the cumulative expansion count over
// every attempted limit, not just the successful one.
//
// There is no upper bound on the limit: an unsatisfiable problem keeps
// iterating forever, inheriting the kernel's non-termination risk.
func IterativeDeepening[S comparable, A any](start S, p search.Problem[S, A]) (search.Result[A], error) {
	if p == nil {
		return search.Result[A]{}, ErrNilProblem
	}

	total := 0
	for limit := 1; ; limit++ {
		res := search.Run(start, p, limitedPolicy[S, A]{limit: float64(limit)}, search.Zero[S])
		total += res.Expansions
		if res.Solved {
			res.Expansions = total

			return res, nil
		}
	}
}
