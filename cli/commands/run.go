package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	runDomain   string
	runStrategy string
	runLimit    float64
	runCourse   int
	runScramble int
	runSeed     int64
	runGrid     string
	runStart    string
	runGoal     string
	runFacing   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search strategy over one problem instance",
	Long: `Run a single (domain, strategy) pair built from flags and print the
action sequence found plus the number of node expansions performed.

Examples:
  frontier run --domain jump --course 5 --strategy bfs
  frontier run --domain jump --course 5 --strategy dls --limit 2
  frontier run --domain npuzzle --scramble 12 --seed 42 --strategy ids
  frontier run --domain hexturn --grid 111,011,111 --start 0,0 --goal 2,2 --strategy ucs`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&runDomain, "domain", "jump", "Problem domain: jump, npuzzle, hexturn")
	runCmd.Flags().StringVar(&runStrategy, "strategy", "bfs", "Strategy: bfs, dfs, dls, ids, ucs")
	runCmd.Flags().Float64Var(&runLimit, "limit", 0, "Path-cost limit for the dls strategy")
	runCmd.Flags().IntVar(&runCourse, "course", 5, "Course length (jump)")
	runCmd.Flags().IntVar(&runScramble, "scramble", 8, "Scramble walk length (npuzzle)")
	runCmd.Flags().Int64Var(&runSeed, "seed", 1, "Scramble seed (npuzzle)")
	runCmd.Flags().StringVar(&runGrid, "grid", "", "Grid mask rows, e.g. 111,011,111 (hexturn)")
	runCmd.Flags().StringVar(&runStart, "start", "0,0", "Start cell col,row (hexturn)")
	runCmd.Flags().StringVar(&runGoal, "goal", "", "Goal cell col,row (hexturn)")
	runCmd.Flags().IntVar(&runFacing, "facing", 0, "Start facing 0..5, 0 = east (hexturn)")
}

func runRun(cmd *cobra.Command, args []string) error {
	sc := Scenario{
		Name:     "run",
		Domain:   runDomain,
		Limit:    runLimit,
		Course:   runCourse,
		Scramble: runScramble,
		Seed:     runSeed,
		Facing:   runFacing,
	}
	if runDomain == "hexturn" {
		grid, err := parseGrid(runGrid)
		if err != nil {
			return err
		}
		start, err := parsePair(runStart)
		if err != nil {
			return err
		}
		goal, err := parsePair(runGoal)
		if err != nil {
			return err
		}
		sc.Grid, sc.Start, sc.Goal = grid, start, goal
	}

	runner, err := buildRunner(sc)
	if err != nil {
		return err
	}
	out, err := runner(runStrategy)
	if err != nil {
		return err
	}

	if !out.solved {
		fmt.Printf("no solution (%d expansions)\n", out.expansions)

		return nil
	}
	fmt.Printf("solution: %s\n", out.actions)
	fmt.Printf("steps: %d, expansions: %d\n", out.steps, out.expansions)

	return nil
}

// parseGrid decodes a comma-separated mask like "111,011,111" into rows of
// single-digit cell values.
func parseGrid(s string) ([][]int, error) {
	if s == "" {
		return nil, fmt.Errorf("commands: --grid is required for hexturn")
	}
	rows := strings.Split(s, ",")
	grid := make([][]int, len(rows))
	for r, row := range rows {
		grid[r] = make([]int, len(row))
		for c, ch := range row {
			v, err := strconv.Atoi(string(ch))
			if err != nil {
				return nil, fmt.Errorf("commands: bad grid cell %q at row %d: %w", string(ch), r, err)
			}
			grid[r][c] = v
		}
	}

	return grid, nil
}

// parsePair decodes "col,row" into a two-element slice.
func parsePair(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrBadCell, s)
	}
	pair := make([]int, 2)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadCell, s)
		}
		pair[i] = v
	}

	return pair, nil
}
