package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/frontier/dfs"
	"github.com/katalvlaran/frontier/jump"
)

// ExampleIterativeDeepening solves the momentum-jump puzzle on a course of
// length 5: no solution fits under path cost 3, so the driver succeeds on
// its fourth attempt with a sprint-and-brake sequence.
func ExampleIterativeDeepening() {
	p, err := jump.New(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := dfs.IterativeDeepening(p.Start(), p)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("solution:", res.Actions)
	fmt.Println("steps:", len(res.Actions))
	// Output:
	// solution: [Faster Faster Slower Steady]
	// steps: 4
}

// ExampleLimited shows the depth-limited no-solution outcome: a course of
// length 5 cannot be finished within path cost 2, and that is an ordinary
// result, not an error.
func ExampleLimited() {
	p, err := jump.New(5)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := dfs.Limited(p.Start(), p, 2)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("solved:", res.Solved)
	// Output:
	// solved: false
}
