package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arloliu/hostelmatch/compat"
	"github.com/arloliu/hostelmatch/normalize"
	"github.com/arloliu/hostelmatch/source"
	"github.com/arloliu/hostelmatch/types"
)

func newScoreCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "score STUDENT_ID STUDENT_ID [STUDENT_ID...]",
		Short: "Print the compatibility score of students in a roster",
		Long: `score prints the pairwise compatibility of the given students and, for
more than two students, the room score (the lowest pairwise score).

A score of 0 means the students must not share a room.`,
		Example: `  hostelmatch score --input students.csv S001 S004`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.FromPath(input)
			if err != nil {
				return err
			}
			table, err := src.LoadTable(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load roster: %w", err)
			}
			roster, err := normalize.Roster(table)
			if err != nil {
				return err
			}

			byID := make(map[string]types.Student, len(roster))
			for _, s := range roster {
				byID[s.ID] = s
			}

			members := make([]types.Student, 0, len(args))
			for _, id := range args {
				s, ok := byID[id]
				if !ok {
					return fmt.Errorf("student %q not found in %s", id, input)
				}
				members = append(members, s)
			}

			out := cmd.OutOrStdout()
			for i := range members {
				for j := i + 1; j < len(members); j++ {
					fmt.Fprintf(out, "%s %s %d/%d\n", members[i].ID, members[j].ID,
						compat.Score(members[i], members[j]), compat.MaxScore)
				}
			}
			if len(members) > 2 {
				fmt.Fprintf(out, "room %d/%d\n", compat.RoomScore(members), compat.MaxScore)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "roster file (.csv, .tsv, .xlsx)")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
