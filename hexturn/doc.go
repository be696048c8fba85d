// Package hexturn implements the hex-grid turn puzzle as a frontier
// search domain: a pointer standing on a pointy-top hexagonal grid must
// reach a target cell, but it can only rotate in place or step in the
// direction it currently faces.
//
// What
//
//	A state is (Col, Row, Facing) with Facing one of the six hex
//	directions. Actions, in fixed successor order:
//
//	  Forward   — step one cell in the facing direction (cost 2)
//	  TurnLeft  — rotate one direction counter-clockwise (cost 1)
//	  TurnRight — rotate one direction clockwise (cost 1)
//
//	The grid is built from a rectangular [][]int mask: cells at or above
//	an open threshold are walkable, everything else is a wall. Forward
//	moves into walls or off the grid are not legal successors. The goal
//	is standing on the target cell, any facing.
//
// Why
//
//	Turns being cheaper than steps gives the domain genuinely non-unit
//	costs: the fewest-action route and the cheapest route disagree, which
//	is exactly the gap between BFS and uniform-cost search this domain is
//	meant to expose.
//
// Coordinates
//
//	Odd-r offset coordinates for pointy-top hexes: column offsets of the
//	six neighbors differ between even and odd rows. Facing 0 is east and
//	facings advance counter-clockwise E, NE, NW, W, SW, SE.
//
// Consistency
//
//	Every action is classified as either a rotation or a translation; the
//	two classes are mutually exclusive and exhaustive. An action that
//	classifies as neither is a bug inside this package, surfaced as a
//	panic, not as a recoverable error.
//
// Usage
//
//	mask := [][]int{
//	    {1, 1, 1},
//	    {0, 1, 1},
//	    {1, 1, 1},
//	}
//	p, err := hexturn.New(mask, hexturn.Cell{Col: 0, Row: 0}, hexturn.Cell{Col: 2, Row: 2})
//	res, err := ucs.Search(p.Start(), p)
//
// Errors
//
//   - ErrEmptyGrid      if the mask has no rows or no columns.
//   - ErrNonRectangular if the mask rows differ in length.
//   - ErrCellOutside    if the start or goal cell lies outside the grid.
//   - ErrCellBlocked    if the start or goal cell is a wall.
package hexturn
