package search

// Run drives a frontier of nodes until a goal is dequeued or the frontier
// is exhausted, and returns the complete Result of the invocation.
//
// The loop, per iteration:
//
//  1. Empty frontier → return an unsolved Result with the expansion count.
//  2. Let head be the first frontier entry. If head's state satisfies the
//     goal predicate, return head.Actions() with the expansion count.
//  3. Otherwise expand head, hand (children, frontier[1:]) to the Policy,
//     adopt the merged slice as the next frontier, and count one expansion.
//
// The goal test fires only at dequeue time: a goal state sitting among
// freshly generated children is not short-circuited — it is recognized
// once the active Policy brings it to the frontier's head. This matters
// for cost-ordered strategies, where the first dequeued goal is the
// cheapest one discovered so far.
//
// Run performs no validation, accepts no context, and has no internal
// escape hatch: an ill-posed problem with unbounded paths and no
// reachable goal makes it loop forever. The frontier, the node tree, and
// the expansion counter are owned exclusively by this invocation, so
// concurrent Runs over the same Problem never interfere as long as the
// Problem's methods are pure.
func Run[S comparable, A any](start S, p Problem[S, A], policy Policy[S, A], h Heuristic[S]) Result[A] {
	frontier := []*Node[S, A]{NewRoot[S, A](start, h)}
	expansions := 0

	for len(frontier) > 0 {
		head := frontier[0]
		if p.IsGoal(head.State) {
			return Result[A]{Actions: head.Actions(), Solved: true, Expansions: expansions}
		}
		frontier = policy.Merge(Expand(p, head, h), frontier[1:])
		expansions++
	}

	return Result[A]{Expansions: expansions}
}
