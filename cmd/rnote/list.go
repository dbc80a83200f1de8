package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/store"
)

func newListCmd() *cobra.Command {
	var (
		category string
		glob     string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l", "ls"},
		Short:   "List notes as scope/name",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}

			var notes []store.Note
			switch {
			case glob != "":
				notes, err = a.store.ListMatching(glob)
			case category != "":
				notes, err = a.store.ListInScope(store.Category(category))
			default:
				notes, err = a.store.ListAll()
			}

			out := cmd.OutOrStdout()
			if errors.Is(err, store.ErrNotFound) && category == "" {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}
			if err != nil {
				return err
			}

			for _, n := range notes {
				fmt.Fprintln(out, n.Label())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list notes in this category or date")
	cmd.Flags().StringVarP(&glob, "glob", "g", "", "only list notes whose scope/name.md matches the pattern")
	cmd.MarkFlagsMutuallyExclusive("category", "glob")
	return cmd
}
