// Package ucs provides the uniform-cost strategy for the frontier search
// kernel: the frontier is kept sorted by path cost at all times.
//
// What
//
//   - Search(start, problem): runs the generic kernel with a cost-ordered
//     merge policy and the zero heuristic. With a zero heuristic this is
//     Dijkstra's algorithm over the search tree, not A*.
//
// How the merge works
//
//	New children are first sorted among themselves by path cost using a
//	stable insertion sort (ties keep successor order), then interleaved
//	into the already-sorted remainder of the frontier by a single linear
//	pass comparing heads; ties favor the pre-existing frontier entry.
//	That makes each merge O(|children|² + |frontier|) with the quadratic
//	term bounded by the branching factor — a full frontier resort is
//	never needed.
//
// Guarantees and their limits
//
//	The sequence of path costs of expanded nodes is non-decreasing, so the
//	first dequeued goal is the cheapest one the tree-search exploration
//	can reach. As everywhere in frontier, duplicate states are pruned per
//	path only: a cheaper route through a state already visited on another
//	branch is not considered, so optimality holds relative to the explored
//	tree, not the underlying state graph.
//
// Complexity (b = branching factor, C = optimal cost, ε = min step cost)
//
//   - Time:   O(b^(1+⌊C/ε⌋)) expansions in the worst case.
//   - Memory: proportional to the frontier, same order as the expansions.
//
// Usage
//
//	res, err := ucs.Search(start, problem)
//	if err != nil {
//	    // ErrNilProblem: nil problem value
//	}
//
// Errors
//
//   - ErrNilProblem if the problem value is nil.
package ucs
