// The frontier CLI - run and benchmark uninformed search strategies.
package main

import (
	"os"

	"github.com/katalvlaran/frontier/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
