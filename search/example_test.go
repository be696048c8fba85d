package search_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/search"
)

// countdown is a toy problem: walk an integer down to zero by subtracting
// 1 or 2, successor order fixed.
type countdown struct{}

func (countdown) IsGoal(n int) bool { return n == 0 }

func (countdown) Successors(n int) []search.Successor[int, string] {
	succs := make([]search.Successor[int, string], 0, 2)
	if n >= 1 {
		succs = append(succs, search.Successor[int, string]{Action: "-1", State: n - 1})
	}
	if n >= 2 {
		succs = append(succs, search.Successor[int, string]{Action: "-2", State: n - 2})
	}

	return succs
}

func (countdown) StepCost(int, string) float64 { return 1 }

// fifo is the simplest possible Policy: append children at the tail.
type fifo struct{}

func (fifo) Merge(children, rest []*search.Node[int, string]) []*search.Node[int, string] {
	return append(rest, children...)
}

// ExampleRun drives the kernel directly with a hand-rolled policy — this
// is all a strategy package does.
func ExampleRun() {
	res := search.Run(3, countdown{}, fifo{}, search.Zero[int])

	fmt.Println("solved:", res.Solved)
	fmt.Println("actions:", res.Actions)
	fmt.Println("expansions:", res.Expansions)
	// Output:
	// solved: true
	// actions: [-1 -2]
	// expansions: 4
}
