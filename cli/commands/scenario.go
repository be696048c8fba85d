package commands

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frontier/bfs"
	"github.com/katalvlaran/frontier/dfs"
	"github.com/katalvlaran/frontier/hexturn"
	"github.com/katalvlaran/frontier/jump"
	"github.com/katalvlaran/frontier/npuzzle"
	"github.com/katalvlaran/frontier/search"
	"github.com/katalvlaran/frontier/ucs"
)

// Sentinel errors for scenario handling.
var (
	// ErrNoScenarios is returned when a scenario file contains no entries.
	ErrNoScenarios = errors.New("commands: scenario file has no scenarios")
	// ErrUnknownDomain is returned for a domain name this CLI cannot build.
	ErrUnknownDomain = errors.New("commands: unknown domain")
	// ErrUnknownStrategy is returned for a strategy name this CLI cannot run.
	ErrUnknownStrategy = errors.New("commands: unknown strategy")
	// ErrBadCell is returned when a start/goal cell is not a [col, row] pair.
	ErrBadCell = errors.New("commands: cell must be a [col, row] pair")
)

// Scenario describes one problem instance plus the strategies to try on it.
// Domain-specific fields are ignored by the other domains.
type Scenario struct {
	Name       string   `yaml:"name"`
	Domain     string   `yaml:"domain"`
	Strategies []string `yaml:"strategies"`
	// Repeats is the number of timed runs per strategy in bench; the
	// expansion count is deterministic, wall-clock time is not. Default 1.
	Repeats int `yaml:"repeats"`
	// Limit is the path-cost bound used by the dls strategy.
	Limit float64 `yaml:"limit"`

	// jump
	Course int `yaml:"course"`

	// npuzzle
	Scramble int   `yaml:"scramble"`
	Seed     int64 `yaml:"seed"`

	// hexturn
	Grid   [][]int `yaml:"grid"`
	Start  []int   `yaml:"start"` // [col, row]
	Goal   []int   `yaml:"goal"`  // [col, row]
	Facing int     `yaml:"facing"`
}

// scenarioFile is the top-level YAML document of a scenario file.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios reads and decodes a YAML scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("commands: read scenario file: %w", err)
	}
	var file scenarioFile
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("commands: decode scenario file: %w", err)
	}
	if len(file.Scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	return file.Scenarios, nil
}

// outcome is what one strategy run reports back to the CLI layer.
type outcome struct {
	solved     bool
	actions    string
	steps      int
	expansions int
}

// runnerFunc executes one named strategy over an already-built problem
// instance, with the domain's type parameters erased behind the closure.
type runnerFunc func(strategy string) (outcome, error)

// buildRunner constructs the scenario's problem instance once and returns
// the closure that dispatches strategies over it.
func buildRunner(sc Scenario) (runnerFunc, error) {
	switch sc.Domain {
	case "jump":
		p, err := jump.New(sc.Course)
		if err != nil {
			return nil, err
		}

		return makeRunner(p.Start(), p, sc.Limit), nil

	case "npuzzle":
		p := npuzzle.New()
		start := npuzzle.Scramble(p, sc.Scramble, sc.Seed)

		return makeRunner(start, p, sc.Limit), nil

	case "hexturn":
		start, err := asCell(sc.Start)
		if err != nil {
			return nil, err
		}
		goal, err := asCell(sc.Goal)
		if err != nil {
			return nil, err
		}
		p, err := hexturn.New(sc.Grid, start, goal, hexturn.WithStartFacing(sc.Facing))
		if err != nil {
			return nil, err
		}

		return makeRunner(p.Start(), p, sc.Limit), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, sc.Domain)
	}
}

// makeRunner erases S and A: everything past this point handles plain
// strings and ints, so run and bench stay domain-agnostic like the kernel.
func makeRunner[S comparable, A comparable](start S, p search.Problem[S, A], limit float64) runnerFunc {
	return func(strategy string) (outcome, error) {
		var (
			res search.Result[A]
			err error
		)
		switch strategy {
		case "bfs":
			res, err = bfs.Search(start, p)
		case "dfs":
			res, err = dfs.Search(start, p)
		case "dls":
			res, err = dfs.Limited(start, p, limit)
		case "ids":
			res, err = dfs.IterativeDeepening(start, p)
		case "ucs":
			res, err = ucs.Search(start, p)
		default:
			return outcome{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
		}
		if err != nil {
			return outcome{}, err
		}

		return outcome{
			solved:     res.Solved,
			actions:    fmt.Sprintf("%v", res.Actions),
			steps:      len(res.Actions),
			expansions: res.Expansions,
		}, nil
	}
}

// asCell converts a YAML [col, row] pair into a hexturn.Cell.
func asCell(pair []int) (hexturn.Cell, error) {
	if len(pair) != 2 {
		return hexturn.Cell{}, fmt.Errorf("%w: got %v", ErrBadCell, pair)
	}

	return hexturn.Cell{Col: pair[0], Row: pair[1]}, nil
}
