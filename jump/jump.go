package jump

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/frontier/search"
)

// ErrBadCourse is returned by New for a course length below 1.
var ErrBadCourse = errors.New("jump: course length must be at least 1")

// Action is one velocity adjustment taken before the runner moves.
type Action int

const (
	// Faster increases velocity by 1, then moves.
	Faster Action = iota
	// Steady keeps velocity unchanged, then moves.
	Steady
	// Slower decreases velocity by 1, then moves.
	Slower
)

// actionOrder fixes the successor generation order for determinism.
var actionOrder = [...]Action{Faster, Steady, Slower}

// String returns the action name, or "Action(n)" for an unknown value.
func (a Action) String() string {
	switch a {
	case Faster:
		return "Faster"
	case Steady:
		return "Steady"
	case Slower:
		return "Slower"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// shift is the velocity delta applied by the action.
func (a Action) shift() int {
	switch a {
	case Faster:
		return 1
	case Slower:
		return -1
	default:
		return 0
	}
}

// State is one configuration of the puzzle. Course is carried inside the
// state so that states from different course lengths never compare equal.
type State struct {
	Course int // finish-line position, fixed per puzzle
	Pos    int // runner position, 0..Course
	Vel    int // current velocity, never negative
}

// Puzzle implements search.Problem over jump states.
type Puzzle struct {
	course int
}

// New builds a puzzle with the given course length.
func New(course int) (*Puzzle, error) {
	if course < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCourse, course)
	}

	return &Puzzle{course: course}, nil
}

// Start is the initial state: the runner at position 0, standing still.
func (p *Puzzle) Start() State {
	return State{Course: p.course}
}

// IsGoal reports whether the runner stands on the finish line at
// exactly velocity 1.
func (p *Puzzle) IsGoal(s State) bool {
	return s.Pos == s.Course && s.Vel == 1
}

// Successors returns the legal moves from s in the fixed order
// Faster, Steady, Slower. A move is legal when the adjusted velocity
// stays non-negative and the new position does not overshoot the course.
func (p *Puzzle) Successors(s State) []search.Successor[State, Action] {
	succs := make([]search.Successor[State, Action], 0, len(actionOrder))
	for _, a := range actionOrder {
		vel := s.Vel + a.shift()
		if vel < 0 {
			continue
		}
		pos := s.Pos + vel
		if pos > s.Course {
			continue
		}
		succs = append(succs, search.Successor[State, Action]{
			Action: a,
			State:  State{Course: s.Course, Pos: pos, Vel: vel},
		})
	}

	return succs
}

// StepCost is 1 for every move: the puzzle counts turns, nothing else.
func (p *Puzzle) StepCost(State, Action) float64 { return 1 }
