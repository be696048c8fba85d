package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

var benchCmd = &cobra.Command{
	Use:   "bench <scenarios.yaml>",
	Short: "Run a YAML scenario file and print a strategy comparison table",
	Long: `Execute every scenario in a YAML file and print one table row per
(scenario, strategy) pair: solved, solution length, expansion count, and
mean/stddev wall-clock time over the configured repeats.

Expansion counts are deterministic per (problem, strategy); timings are
not, which is what the repeats are for.

Example scenario file:

  scenarios:
    - name: jump-5
      domain: jump
      course: 5
      strategies: [bfs, ids, ucs]
      repeats: 10
    - name: hex-corner
      domain: hexturn
      grid: [[1, 1, 1], [0, 1, 1], [1, 1, 1]]
      start: [0, 0]
      goal: [2, 2]
      strategies: [bfs, ucs]`,
	Args: cobra.ExactArgs(1),
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	scenarios, err := LoadScenarios(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SCENARIO\tSTRATEGY\tSOLVED\tSTEPS\tEXPANSIONS\tMEAN\tSTDDEV")

	for _, sc := range scenarios {
		runner, err := buildRunner(sc)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
		repeats := sc.Repeats
		if repeats < 1 {
			repeats = 1
		}
		for _, strategy := range sc.Strategies {
			var (
				out     outcome
				seconds = make([]float64, 0, repeats)
			)
			for i := 0; i < repeats; i++ {
				began := time.Now()
				out, err = runner(strategy)
				if err != nil {
					return fmt.Errorf("scenario %q, strategy %q: %w", sc.Name, strategy, err)
				}
				seconds = append(seconds, time.Since(began).Seconds())
			}
			mean := stat.Mean(seconds, nil)
			sd := 0.0
			if repeats > 1 {
				sd = stat.StdDev(seconds, nil)
			}
			fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%d\t%s\t%s\n",
				sc.Name, strategy, out.solved, out.steps, out.expansions,
				time.Duration(mean*float64(time.Second)).Round(time.Microsecond),
				time.Duration(sd*float64(time.Second)).Round(time.Microsecond),
			)
		}
	}

	return w.Flush()
}
