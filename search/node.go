package search

// Node is one point of the search tree: a state plus its provenance.
// Nodes are immutable after creation and linked through Parent references,
// so siblings share their ancestor chain structurally instead of copying
// it. A node's parent is always created strictly before the node itself,
// which rules out cycles without any runtime check.
type Node[S comparable, A any] struct {
	// Action is the step that produced this node; the zero value at the root.
	Action A

	// State is the domain configuration this node stands for.
	State S

	// Parent links back toward the root; nil at the root.
	Parent *Node[S, A]

	// PathCost is the cumulative step cost from the root to this node.
	// Non-decreasing along any path while step costs stay non-negative.
	PathCost float64

	// TotalCost is PathCost plus the heuristic estimate for State.
	// Only cost-ordered strategies ever look at it.
	TotalCost float64

	// Depth is the number of actions from the root; Depth == len(Actions()).
	Depth int
}

// NewRoot builds the root of a search tree: no action, no parent,
// zero path cost, total cost equal to the heuristic estimate of state.
func NewRoot[S comparable, A any](state S, h Heuristic[S]) *Node[S, A] {
	return &Node[S, A]{State: state, TotalCost: h(state)}
}

// OnPath reports whether s equals the state of n or of any ancestor of n.
// It walks the parent chain, O(Depth) per call and deliberately not
// memoized: it runs once per candidate successor during expansion, giving
// O(Depth) amortized per generated child and O(Depth²) worst case over a
// single root-to-node path of expansions.
func (n *Node[S, A]) OnPath(s S) bool {
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.State == s {
			return true
		}
	}

	return false
}

// Actions returns the action sequence from the root to n, oldest first.
// O(Depth). The root yields an empty, non-nil slice.
func (n *Node[S, A]) Actions() []A {
	actions := make([]A, n.Depth)
	// Walk toward the root, placing each action by its depth so the
	// result comes out oldest-first without a separate reversal pass.
	for cur := n; cur.Parent != nil; cur = cur.Parent {
		actions[cur.Depth-1] = cur.Action
	}

	return actions
}
