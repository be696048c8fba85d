// Package commands implements the frontier command-line interface.
package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "frontier",
	Short: "Compare uninformed search strategies across puzzle domains",
	Long: `frontier runs uninformed search strategies (breadth-first, depth-first,
depth-limited, iterative-deepening, uniform-cost) over pluggable problem
domains (the momentum-jump puzzle, the 8-puzzle, the hex-grid turn puzzle)
and reports the action sequence found together with the number of node
expansions performed.

Use "run" for a single (domain, strategy) pair driven by flags, or "bench"
to execute a whole YAML scenario file and print a comparison table.`,
	SilenceUsage: true,
}

// Execute runs the root command; the binary's main just forwards here.
func Execute() error {
	return rootCmd.Execute()
}
