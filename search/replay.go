package search

// Replay walks p's successor relation from start through actions in order
// and returns the state reached. The boolean reports whether every action
// was found among the successors of the state it was applied to; when it
// is false, the returned state is the one where the walk got stuck.
//
// Replay is the validity check for solutions: a Result with Solved == true
// must replay from the start state to a state satisfying the goal
// predicate, in exactly len(Actions) steps.
func Replay[S comparable, A comparable](p Problem[S, A], start S, actions []A) (S, bool) {
	cur := start
	for _, a := range actions {
		matched := false
		for _, sc := range p.Successors(cur) {
			if sc.Action == a {
				cur = sc.State
				matched = true

				break
			}
		}
		if !matched {
			return cur, false
		}
	}

	return cur, true
}
