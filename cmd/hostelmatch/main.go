// Package main is the hostelmatch command-line front end.
//
// Commands:
//   - assign: load a roster, allocate rooms, write the allocation table
//   - sample: write a generated demo roster
//   - score:  print the compatibility score of two students
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop() is called explicitly before exit
	}
}

// newRootCmd builds the command tree writing results to stdout and logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "hostelmatch",
		Short: "Assign students to hostel rooms",
		Long: `hostelmatch partitions a student roster into fixed-capacity rooms.

Two strategies are available:
  greedy   never mixes genders, prefers roommates sharing course and year
  cluster  groups students with similar lifestyle features (k-means), deterministic per seed

Rosters are read from CSV, TSV or XLSX files, or from a Postgres table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(
		newAssignCmd(),
		newSampleCmd(),
		newScoreCmd(),
	)

	return root
}
