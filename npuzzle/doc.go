// Package npuzzle implements the classic 8-puzzle as a frontier search
// domain: eight numbered tiles and one blank on a 3×3 board, where a move
// slides a neighboring tile into the blank.
//
// What
//
//	A state is the full board, row-major, with 0 standing for the blank.
//	Actions name the direction the blank travels: Up, Down, Left, Right.
//	Every move costs 1; the goal is a fixed target board (Solved by
//	default: tiles 1..8 in reading order, blank in the last cell).
//
// Why
//
//	The 8-puzzle is the standard stress domain for uninformed search: a
//	branching factor of 2–4 and solution depths past 20 make the cost of
//	strategy choice visible in expansion counts, while the board array is
//	small enough to stay a comparable Go value with no hashing needed.
//
// Determinism
//
//	Successors are generated in the fixed order Up, Down, Left, Right,
//	so every traversal over this domain is fully reproducible. Scramble
//	derives boards by a seeded random walk backwards from the goal, which
//	keeps generated instances solvable and reproducible per seed.
//
// Usage
//
//	p := npuzzle.New()
//	start := npuzzle.Scramble(p, 12, 42)
//	res, err := ids.Search...  // any strategy
//
// Errors
//
//	None: every board value is a valid state, and illegal moves simply do
//	not appear among the successors.
package npuzzle
