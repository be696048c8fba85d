// Package hexturn defines core types, options, and sentinel errors for
// the hex-grid turn puzzle domain.
package hexturn

import (
	"errors"
	"fmt"
)

// Sentinel errors for puzzle construction.
var (
	// ErrEmptyGrid indicates the mask has no rows or no columns.
	ErrEmptyGrid = errors.New("hexturn: grid must have at least one row and one column")
	// ErrNonRectangular indicates mask rows of differing lengths.
	ErrNonRectangular = errors.New("hexturn: all grid rows must have the same length")
	// ErrCellOutside indicates the start or goal cell is off the grid.
	ErrCellOutside = errors.New("hexturn: cell outside the grid")
	// ErrCellBlocked indicates the start or goal cell is a wall.
	ErrCellBlocked = errors.New("hexturn: cell is blocked")
)

// Action costs. Turning in place is deliberately cheaper than stepping,
// so cheapest routes and fewest-action routes disagree.
const (
	ForwardCost = 2.0
	TurnCost    = 1.0
)

// Facings, counter-clockwise from east. Valid values are 0..5.
const (
	East = iota
	NorthEast
	NorthWest
	West
	SouthWest
	SouthEast
	facingCount
)

// Action is one move of the pointer.
type Action uint8

const (
	// Forward steps one cell in the facing direction.
	Forward Action = iota
	// TurnLeft rotates one direction counter-clockwise, staying in place.
	TurnLeft
	// TurnRight rotates one direction clockwise, staying in place.
	TurnRight
)

// actionOrder fixes the successor generation order for determinism.
var actionOrder = [...]Action{Forward, TurnLeft, TurnRight}

// String returns the action name, or "Action(n)" for an unknown value.
func (a Action) String() string {
	switch a {
	case Forward:
		return "Forward"
	case TurnLeft:
		return "TurnLeft"
	case TurnRight:
		return "TurnRight"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// moveKind partitions actions into rotations and translations.
// The partition must be mutually exclusive and exhaustive.
type moveKind uint8

const (
	moveRotate moveKind = iota
	moveTranslate
)

// kind classifies an action. An unclassifiable action means the action
// set and this switch have drifted apart — a bug in this package, fatal
// by design rather than a recoverable condition.
func kind(a Action) moveKind {
	switch a {
	case Forward:
		return moveTranslate
	case TurnLeft, TurnRight:
		return moveRotate
	default:
		panic(fmt.Sprintf("hexturn: unclassified action %d", uint8(a)))
	}
}

// Cell addresses one hex in odd-r offset coordinates.
type Cell struct {
	Col, Row int
}

// State is one configuration of the pointer: its cell plus its facing.
type State struct {
	Col, Row int
	Facing   int // 0..5, see the facing constants
}

// Option tunes puzzle construction.
type Option func(*Options)

// Options holds the tunable construction parameters.
type Options struct {
	// OpenThreshold is the minimum mask value considered walkable.
	OpenThreshold int
	// StartFacing is the initial facing of the pointer.
	StartFacing int
}

// DefaultOptions returns Options with mask values ≥ 1 walkable and the
// pointer initially facing east.
func DefaultOptions() Options {
	return Options{
		OpenThreshold: 1,
		StartFacing:   East,
	}
}

// WithOpenThreshold sets the minimum mask value considered walkable.
func WithOpenThreshold(t int) Option {
	return func(o *Options) {
		o.OpenThreshold = t
	}
}

// WithStartFacing sets the initial facing; values are taken modulo 6.
func WithStartFacing(f int) Option {
	return func(o *Options) {
		o.StartFacing = ((f % facingCount) + facingCount) % facingCount
	}
}
