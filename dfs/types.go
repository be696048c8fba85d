// Package dfs defines the sentinel errors shared by the depth-first,
// depth-limited, and iterative-deepening entry points.
package dfs

import "errors"

var (
	// ErrNilProblem is returned when a nil problem value is passed to any
	// entry point of this package.
	ErrNilProblem = errors.New("dfs: problem is nil")

	// ErrBadLimit is returned by Limited when the path-cost limit is
	// negative. A limit of 0 is legal: it expands the root and prunes
	// every positive-cost child.
	ErrBadLimit = errors.New("dfs: limit must be non-negative")
)
