// Package search provides the domain-agnostic core of frontier: the search
// tree Node, the Problem capability bundle, node expansion, and the generic
// kernel that drives a frontier under a pluggable ordering Policy.
//
// What
//
//   - Node[S, A]: one immutable point of the search tree — state plus
//     provenance (action, parent link, path cost, total cost, depth).
//   - Problem[S, A]: the three capabilities a domain must supply —
//     IsGoal, Successors, StepCost. States and actions stay opaque;
//     the core only compares states for equality.
//   - Expand: applies the successor function to a node's state, skipping
//     states already on the node's root path, and builds child nodes.
//   - Run: the kernel loop — dequeue the frontier head, test it against
//     the goal, otherwise expand it and merge the children back under the
//     active Policy. Returns a Result carrying the action sequence (when
//     solved) and the exact number of Expand calls performed.
//
// Why
//
//   - One kernel, many strategies: bfs, dfs, dls, ids and ucs differ only
//     in how they merge new children into the frontier, so each is a tiny
//     Policy rather than a reimplemented loop.
//   - Honest benchmarking: the expansion count in every Result is the sole
//     performance metric, incremented exactly once per Expand call.
//
// Tree search, not graph search
//
//	Duplicate states are pruned only against the current root path
//	(Node.OnPath). A state reached earlier on an unrelated branch is
//	revisited. This is a deliberate simplification: it keeps nodes
//	immutable and sharing structural, at the price of completeness and
//	optimality guarantees on problems with convergent paths.
//
// Determinism and termination
//
//	For a fixed (problem, policy, successor ordering) triple every run is
//	fully deterministic. The kernel performs no reachability or finiteness
//	check: an ill-posed problem (unbounded paths, no reachable goal) makes
//	Run loop forever. There is no context, no hook, and no side channel —
//	the Result pair is the entire reporting surface.
//
// Complexity (d = depth of a node, b = branching factor)
//
//   - Node.OnPath:   O(d) per call, no memoization — O(d) amortized per
//     generated child, O(d²) worst case along one root-to-node path.
//   - Node.Actions:  O(d).
//   - Expand:        O(b·d) dominated by the on-path checks.
//
// Usage
//
//	res := search.Run(start, problem, myPolicy, search.Zero[MyState])
//	if !res.Solved {
//	    // ordinary outcome, not an error
//	}
//	fmt.Println(res.Actions, res.Expansions)
package search
