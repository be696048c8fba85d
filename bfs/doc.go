// Package bfs provides the breadth-first strategy for the frontier search
// kernel: newly expanded children are appended at the frontier's tail.
//
// What
//
//   - Search(start, problem): runs the generic kernel with a FIFO merge
//     policy and the zero heuristic, returning the kernel's Result —
//     the action sequence (when solved) plus the expansion count.
//
// Why
//
//	Appending children at the tail makes the frontier a queue, so nodes
//	leave it in non-decreasing depth: the shallowest goal discoverable by
//	tree-search exploration is found first. When every step cost is equal,
//	that solution is also the cheapest one the exploration can reach.
//
// Guarantees and their limits
//
//	Shallowest-first holds over the tree-search exploration only. Because
//	duplicate states are pruned per path rather than globally, a shorter
//	route passing through a state already visited on a different branch is
//	never considered. BFS is complete on finitely branching problems whose
//	goal is reachable; an infinite frontier with no reachable goal does
//	not terminate.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d) node expansions.
//   - Memory: O(b^d) frontier entries — the classic BFS space wall.
//
// Usage
//
//	res, err := bfs.Search(start, problem)
//	if err != nil {
//	    // ErrNilProblem: nil problem value
//	}
//	if res.Solved {
//	    fmt.Println(res.Actions, res.Expansions)
//	}
//
// Errors
//
//   - ErrNilProblem if the problem value is nil.
package bfs
