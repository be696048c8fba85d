package hexturn

import (
	"fmt"

	"github.com/katalvlaran/frontier/search"
)

// neighborOffsets[parity][facing] is the (dCol, dRow) step for a pointy-top
// hex in odd-r offset coordinates; parity is Row & 1.
var neighborOffsets = [2][facingCount][2]int{
	{ // even rows
		{1, 0},   // East
		{0, -1},  // NorthEast
		{-1, -1}, // NorthWest
		{-1, 0},  // West
		{-1, 1},  // SouthWest
		{0, 1},   // SouthEast
	},
	{ // odd rows
		{1, 0},  // East
		{1, -1}, // NorthEast
		{0, -1}, // NorthWest
		{-1, 0}, // West
		{0, 1},  // SouthWest
		{1, 1},  // SouthEast
	},
}

// Puzzle implements search.Problem over hexturn states.
// It is immutable once built.
type Puzzle struct {
	width, height int
	open          [][]bool
	start         Cell
	goal          Cell
	startFacing   int
}

// New builds a puzzle over the rectangular mask. Cells with a value at or
// above the open threshold are walkable. start and goal must both lie on
// the grid and be walkable.
func New(mask [][]int, start, goal Cell, opts ...Option) (*Puzzle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(mask) == 0 || len(mask[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(mask)
	width := len(mask[0])

	open := make([][]bool, height)
	for r, row := range mask {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), width)
		}
		open[r] = make([]bool, width)
		for c, v := range row {
			open[r][c] = v >= o.OpenThreshold
		}
	}

	p := &Puzzle{
		width:       width,
		height:      height,
		open:        open,
		start:       start,
		goal:        goal,
		startFacing: o.StartFacing,
	}
	for _, cell := range []Cell{start, goal} {
		if !p.inside(cell.Col, cell.Row) {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrCellOutside, cell.Col, cell.Row)
		}
		if !open[cell.Row][cell.Col] {
			return nil, fmt.Errorf("%w: (%d,%d)", ErrCellBlocked, cell.Col, cell.Row)
		}
	}

	return p, nil
}

// Start is the initial state: the pointer on the start cell with the
// configured facing.
func (p *Puzzle) Start() State {
	return State{Col: p.start.Col, Row: p.start.Row, Facing: p.startFacing}
}

// IsGoal reports whether the pointer stands on the goal cell; facing is
// irrelevant to the goal.
func (p *Puzzle) IsGoal(s State) bool {
	return s.Col == p.goal.Col && s.Row == p.goal.Row
}

// Successors returns the legal moves from s in the fixed order Forward,
// TurnLeft, TurnRight. Forward is absent when the faced cell is off the
// grid or blocked; turns are always legal.
func (p *Puzzle) Successors(s State) []search.Successor[State, Action] {
	succs := make([]search.Successor[State, Action], 0, len(actionOrder))
	for _, a := range actionOrder {
		switch kind(a) {
		case moveTranslate:
			off := neighborOffsets[s.Row&1][s.Facing]
			col, row := s.Col+off[0], s.Row+off[1]
			if !p.inside(col, row) || !p.open[row][col] {
				continue
			}
			succs = append(succs, search.Successor[State, Action]{
				Action: a,
				State:  State{Col: col, Row: row, Facing: s.Facing},
			})
		case moveRotate:
			facing := s.Facing
			if a == TurnLeft {
				facing = (facing + 1) % facingCount
			} else {
				facing = (facing + facingCount - 1) % facingCount
			}
			succs = append(succs, search.Successor[State, Action]{
				Action: a,
				State:  State{Col: s.Col, Row: s.Row, Facing: facing},
			})
		}
	}

	return succs
}

// StepCost prices a move by its kind: translations cost ForwardCost,
// rotations cost TurnCost.
func (p *Puzzle) StepCost(_ State, a Action) float64 {
	switch kind(a) {
	case moveTranslate:
		return ForwardCost
	case moveRotate:
		return TurnCost
	default:
		// kind already panics on unclassified actions; this arm guards
		// against a moveKind value the pricing table does not know.
		panic(fmt.Sprintf("hexturn: unpriced move kind for action %v", a))
	}
}

// inside reports whether (col, row) lies on the grid.
func (p *Puzzle) inside(col, row int) bool {
	return col >= 0 && col < p.width && row >= 0 && row < p.height
}
