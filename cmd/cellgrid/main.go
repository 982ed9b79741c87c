// Command cellgrid is the operator CLI for inspecting cells of a running
// grid: query one cell's status, list a cell's neighbors, or watch a cell
// evolve.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cellgrid",
		Short:         "Inspect cells of a distributed automaton grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(statusCmd())
	cmd.AddCommand(neighborsCmd())
	cmd.AddCommand(watchCmd())
	return cmd
}
