package dfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/frontier/dfs"
	"github.com/katalvlaran/frontier/jump"
	"github.com/katalvlaran/frontier/search"
)

// TestIterativeDeepening_NilProblem rejects a nil problem value.
func TestIterativeDeepening_NilProblem(t *testing.T) {
	_, err := dfs.IterativeDeepening(jump.State{}, (search.Problem[jump.State, jump.Action])(nil))
	if !errors.Is(err, dfs.ErrNilProblem) {
		t.Errorf("nil problem: want ErrNilProblem, got %v", err)
	}
}

// TestIterativeDeepening_MatchesLimited: IDS returns exactly the solution
// of depth-limited search at the minimal solving limit, and its expansion
// count is the sum of the limited counts over limits 1..minimal inclusive.
func TestIterativeDeepening_MatchesLimited(t *testing.T) {
	p, err := jump.New(5)
	if err != nil {
		t.Fatal(err)
	}
	start := p.Start()

	ids, err := dfs.IterativeDeepening(start, p)
	if err != nil {
		t.Fatal(err)
	}
	if !ids.Solved {
		t.Fatal("IDS Solved = false; want a solution")
	}

	sum := 0
	for limit := 1; ; limit++ {
		res, lerr := dfs.Limited(start, p, float64(limit))
		if lerr != nil {
			t.Fatal(lerr)
		}
		sum += res.Expansions
		if !res.Solved {
			continue
		}
		if !reflect.DeepEqual(ids.Actions, res.Actions) {
			t.Errorf("IDS solution %v differs from Limited(%d) solution %v", ids.Actions, limit, res.Actions)
		}
		if ids.Expansions != sum {
			t.Errorf("IDS Expansions = %d; want cumulative %d over limits 1..%d", ids.Expansions, sum, limit)
		}

		break
	}
}

// TestIterativeDeepening_GoalAtStart: the very first attempt dequeues the
// root as a goal, so the cumulative count stays zero.
func TestIterativeDeepening_GoalAtStart(t *testing.T) {
	res, err := dfs.IterativeDeepening("s", trivial{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Solved || len(res.Actions) != 0 || res.Expansions != 0 {
		t.Errorf("got (%v, %t, %d); want ([], true, 0)", res.Actions, res.Solved, res.Expansions)
	}
}

// trivial is the problem whose start already wins.
type trivial struct{}

func (trivial) IsGoal(string) bool { return true }

func (trivial) Successors(string) []search.Successor[string, int] { return nil }

func (trivial) StepCost(string, int) float64 { return 1 }
