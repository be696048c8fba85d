// Package search defines the core types shared by every strategy:
// Problem, Successor, Heuristic, Policy, and Result.
package search

// Successor is one (action, state) pair produced by a Problem's successor
// function. The slice order chosen by the domain is preserved end to end
// and determines tie-breaking and traversal order.
type Successor[S comparable, A any] struct {
	Action A
	State  S
}

// Problem bundles the three capabilities a domain must supply.
// All three must be pure: same input, same output, no side effects.
// The core never inspects states or actions beyond comparing states
// for equality and passing both back into these methods.
type Problem[S comparable, A any] interface {
	// IsGoal reports whether s satisfies the goal predicate.
	IsGoal(s S) bool

	// Successors returns the ordered (action, state) pairs reachable
	// from s in one step. The order must be deterministic.
	Successors(s S) []Successor[S, A]

	// StepCost returns the non-negative cost of taking a in state s.
	// Negative costs are an unenforced contract violation.
	StepCost(s S, a A) float64
}

// Heuristic estimates the remaining cost from s to a goal.
// It is a first-class kernel parameter so informed search can be layered
// on top; every strategy shipped with frontier uses Zero.
type Heuristic[S comparable] func(s S) float64

// Zero is the constant-zero heuristic, valid for any problem.
func Zero[S comparable](S) float64 { return 0 }

// Policy decides how newly expanded children are merged into the frontier.
// BFS, DFS, DLS and UCS are nothing more than different Policies handed to
// Run; the kernel itself never hard-codes an ordering.
type Policy[S comparable, A any] interface {
	// Merge returns the next frontier given the children of the node just
	// expanded and the remainder of the current frontier (head excluded).
	// Merge owns both slices and may reuse their backing arrays.
	Merge(children, rest []*Node[S, A]) []*Node[S, A]
}

// Result is the complete outcome of one search invocation — there is no
// other reporting surface between the kernel and its callers.
type Result[A any] struct {
	// Actions is the root-to-goal action sequence, oldest first.
	// Meaningful only when Solved; empty (non-nil) when the start state
	// already satisfies the goal.
	Actions []A

	// Solved distinguishes a found solution from the no-solution outcome.
	// False is an ordinary, expected result — never an error.
	Solved bool

	// Expansions counts Expand invocations performed to produce the
	// answer, exactly one per expanded node regardless of child count.
	Expansions int
}
