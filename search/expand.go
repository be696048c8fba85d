package search

// Expand applies p's successor function to n's state and builds one child
// node per retained (action, state) pair, preserving successor order.
//
// A pair is discarded when its state already appears on n's root path
// (Node.OnPath). This on-path check is the sole duplicate-avoidance
// mechanism: it prevents immediate cycles along the current path but does
// not prevent revisiting a state reached earlier via an unrelated branch.
//
// Each child gets:
//
//	PathCost  = n.PathCost + p.StepCost(n.State, action)
//	TotalCost = PathCost + h(state)
//	Depth     = n.Depth + 1
//
// Expand itself keeps no count; the kernel increments its expansion
// counter exactly once per call, even when zero children result.
func Expand[S comparable, A any](p Problem[S, A], n *Node[S, A], h Heuristic[S]) []*Node[S, A] {
	succs := p.Successors(n.State)
	children := make([]*Node[S, A], 0, len(succs))
	for _, sc := range succs {
		if n.OnPath(sc.State) {
			continue
		}
		pathCost := n.PathCost + p.StepCost(n.State, sc.Action)
		children = append(children, &Node[S, A]{
			Action:    sc.Action,
			State:     sc.State,
			Parent:    n,
			PathCost:  pathCost,
			TotalCost: pathCost + h(sc.State),
			Depth:     n.Depth + 1,
		})
	}

	return children
}
