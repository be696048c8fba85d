package npuzzle

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/frontier/search"
)

// State is the board, row-major on a 3×3 grid; 0 is the blank.
// Being a plain array it is a comparable value, which is all the search
// core requires of a state.
type State [9]uint8

// String renders the board as three rows, "_" for the blank.
func (s State) String() string {
	out := ""
	for i, v := range s {
		switch {
		case v == 0:
			out += "_"
		default:
			out += fmt.Sprintf("%d", v)
		}
		if i%3 == 2 && i != 8 {
			out += "/"
		}
	}

	return out
}

// Action is the direction the blank travels on a move.
type Action uint8

const (
	Up Action = iota
	Down
	Left
	Right
)

// actionOrder fixes the successor generation order for determinism.
var actionOrder = [...]Action{Up, Down, Left, Right}

// String returns the action name, or "Action(n)" for an unknown value.
func (a Action) String() string {
	switch a {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// opposite is the move that exactly undoes a.
func (a Action) opposite() Action {
	switch a {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Solved is the default goal board: 1..8 in reading order, blank last.
var Solved = State{1, 2, 3, 4, 5, 6, 7, 8, 0}

// Puzzle implements search.Problem over 8-puzzle boards.
type Puzzle struct {
	goal State
}

// New builds a puzzle targeting the Solved board.
func New() *Puzzle {
	return &Puzzle{goal: Solved}
}

// NewWithGoal builds a puzzle targeting an arbitrary board. Only boards
// in the same permutation-parity class as the start are ever reachable;
// the puzzle does not check this.
func NewWithGoal(goal State) *Puzzle {
	return &Puzzle{goal: goal}
}

// IsGoal reports whether s equals the target board.
func (p *Puzzle) IsGoal(s State) bool {
	return s == p.goal
}

// Successors returns the legal blank moves from s in the fixed order
// Up, Down, Left, Right. A move off the board edge is simply absent.
func (p *Puzzle) Successors(s State) []search.Successor[State, Action] {
	blank := 0
	for i, v := range s {
		if v == 0 {
			blank = i

			break
		}
	}
	row, col := blank/3, blank%3

	succs := make([]search.Successor[State, Action], 0, 4)
	for _, a := range actionOrder {
		target := -1
		switch a {
		case Up:
			if row > 0 {
				target = blank - 3
			}
		case Down:
			if row < 2 {
				target = blank + 3
			}
		case Left:
			if col > 0 {
				target = blank - 1
			}
		case Right:
			if col < 2 {
				target = blank + 1
			}
		}
		if target < 0 {
			continue
		}
		next := s
		next[blank], next[target] = next[target], next[blank]
		succs = append(succs, search.Successor[State, Action]{Action: a, State: next})
	}

	return succs
}

// StepCost is 1 for every slide.
func (p *Puzzle) StepCost(State, Action) float64 { return 1 }

// Scramble walks steps random legal moves backwards from the goal board
// and returns the board reached, never undoing the immediately preceding
// move. The walk is seeded, so instances are reproducible, and because it
// starts at the goal every scramble is solvable in at most steps moves.
func Scramble(p *Puzzle, steps int, seed int64) State {
	rng := rand.New(rand.NewSource(seed))
	cur := p.goal
	prev := Action(255) // no previous move yet
	for i := 0; i < steps; i++ {
		succs := p.Successors(cur)
		// drop the inverse of the previous move
		legal := succs[:0]
		for _, sc := range succs {
			if prev != 255 && sc.Action == prev.opposite() {
				continue
			}
			legal = append(legal, sc)
		}
		pick := legal[rng.Intn(len(legal))]
		cur = pick.State
		prev = pick.Action
	}

	return cur
}
