package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/hostelmatch/report"
	"github.com/arloliu/hostelmatch/source"
)

func newSampleCmd() *cobra.Command {
	var (
		count   int
		seed    int64
		numeric bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write a generated demo roster",
		Long: `sample writes a demo roster that assign can read back.

The default roster cycles through fixed genders, courses, years and lifestyle
words. With --numeric it carries seeded numeric lifestyle columns suited to the
cluster strategy.`,
		Example: `  hostelmatch sample --count 40 --output students.csv
  hostelmatch sample --numeric --seed 7 --output students.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			opts := []source.SampleOption{source.WithCount(count), source.WithSampleSeed(seed)}
			if numeric {
				opts = append(opts, source.WithNumeric())
			}

			table, err := source.NewSample(opts...).LoadTable(cmd.Context())
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return report.WriteTableCSV(cmd.OutOrStdout(), table)
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() {
				if closeErr := f.Close(); err == nil {
					err = closeErr
				}
			}()

			if strings.EqualFold(filepath.Ext(output), ".xlsx") {
				return report.WriteTableXLSX(f, table, "Roster")
			}

			return report.WriteTableCSV(f, table)
		},
	}

	fs := cmd.Flags()
	fs.IntVarP(&count, "count", "n", source.DefaultSampleCount, "number of students")
	fs.Int64Var(&seed, "seed", source.DefaultSampleSeed, "generator seed for numeric rosters")
	fs.BoolVar(&numeric, "numeric", false, "generate numeric lifestyle columns")
	fs.StringVarP(&output, "output", "o", "-", "output file (.csv or .xlsx), - for stdout")

	return cmd
}
