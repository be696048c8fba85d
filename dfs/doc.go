// Package dfs provides the depth-first family of strategies for the
// frontier search kernel: plain depth-first, depth-limited, and the
// iterative-deepening driver built on top of the limited variant.
//
// What
//
//   - Search(start, problem): LIFO merge — children are prepended at the
//     frontier's head, so the most recently generated branch is followed
//     to its end before any sibling is touched.
//   - Limited(start, problem, limit): like Search, but children whose
//     path cost exceeds limit are dropped at merge time, pruning the
//     branch. The limit bounds path cost, which equals step count only
//     when every step cost is 1 — an assumption inherited from unit-cost
//     domains and preserved as-is.
//   - IterativeDeepening(start, problem): runs Limited with limit
//     1, 2, 3, … until a limit solves, accumulating expansion counts
//     across every attempt (not just the successful one).
//
// Why
//
//	Depth-first search trades the completeness and shallowest-first
//	guarantee of BFS for O(b·d) frontier memory. Iterative deepening
//	recovers the shallowest-first behavior on unit-cost problems while
//	keeping the depth-first memory profile, at the price of re-expanding
//	shallow nodes on every attempt.
//
// Termination
//
//	Search is not complete on problems admitting infinite paths: the
//	on-path duplicate check blocks cycles along one path, but an acyclic
//	infinite descent still runs forever. Limited always terminates on
//	finitely branching problems with positive step costs. Iterative
//	deepening places no upper bound on the limit, so an unsatisfiable
//	problem iterates forever — a documented risk, not defended against.
//
// Complexity (b = branching factor, d = depth reached)
//
//   - Time:   O(b^d) expansions; iterative deepening O(b^d) overall,
//     the geometric re-expansion overhead being a constant factor.
//   - Memory: O(b·d) frontier entries.
//
// Usage
//
//	res, err := dfs.Limited(start, problem, 5)
//	if err != nil {
//	    // ErrNilProblem or ErrBadLimit
//	}
//	if !res.Solved {
//	    // no solution within path cost 5 — an ordinary outcome
//	}
//
// Errors
//
//   - ErrNilProblem if the problem value is nil.
//   - ErrBadLimit   if a negative limit is passed to Limited.
package dfs
