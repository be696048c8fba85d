package bfs

import (
	"errors"

	"github.com/katalvlaran/frontier/search"
)

// ErrNilProblem is returned when a nil problem value is passed to Search.
var ErrNilProblem = errors.New("bfs: problem is nil")

// policy appends newly expanded children at the frontier's tail,
// turning the frontier into a FIFO queue: shallowest nodes leave first.
type policy[S comparable, A any] struct{}

// Merge returns rest ++ children. It may write into rest's spare capacity;
// the kernel discards the previous frontier, so no aliasing survives.
func (policy[S, A]) Merge(children, rest []*search.Node[S, A]) []*search.Node[S, A] {
	return append(rest, children...)
}

// Search runs breadth-first search from start over p and returns the
// kernel's Result: the shallowest solution discoverable by tree-search
// exploration, or the unsolved Result once the frontier is exhausted.
// The heuristic is the zero function — BFS never orders by cost.
func Search[S comparable, A any](start S, p search.Problem[S, A]) (search.Result[A], error) {
	if p == nil {
		return search.Result[A]{}, ErrNilProblem
	}

	return search.Run(start, p, policy[S, A]{}, search.Zero[S]), nil
}
