// Package jump implements the momentum-jump puzzle as a frontier search
// domain: a runner on a straight course builds up velocity step by step
// and must come to the finish line at exactly velocity 1.
//
// What
//
//	A state is (Course, Pos, Vel). Each turn the runner picks one action:
//
//	  Faster — Vel+1, then Pos += Vel
//	  Steady — Vel unchanged, then Pos += Vel
//	  Slower — Vel-1, then Pos += Vel
//
//	Moves that would drive Vel below 0 or overshoot Pos past Course are
//	not legal successors. The goal is Pos == Course && Vel == 1: the
//	runner must land on the finish line still moving, but gently.
//
// Why
//
//	The puzzle is tiny yet non-trivial: reaching the goal fast requires
//	accelerating early and braking at the right moment, so the shortest
//	action sequence is rarely the greedy one. Every step costs 1, making
//	the domain a clean unit-cost benchmark for BFS, DLS and IDS.
//
// Determinism
//
//	Successors are generated in the fixed order Faster, Steady, Slower,
//	so every traversal over this domain is fully reproducible.
//
// Usage
//
//	p, err := jump.New(5)
//	if err != nil { ... }
//	res, err := bfs.Search(p.Start(), p)
//
// Errors
//
//   - ErrBadCourse if the course length is below 1.
package jump
