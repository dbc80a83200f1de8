package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/note"
	"github.com/vinayprograms/rnote/internal/store"
)

func newRemoveCmd() *cobra.Command {
	var (
		date     string
		category string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"r", "rm"},
		Short:   "Delete a note, a whole category, or every note created on a date",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			sure := func(format string, args ...any) error {
				if yes {
					return nil
				}
				ok, err := confirm(format, args...)
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
				return nil
			}

			switch {
			case date != "":
				if _, err := store.OnDate(date); err != nil {
					return err
				}
				if err := sure("Are you sure you want to delete every note created on %s", date); err != nil {
					return err
				}
				report, err := a.engine.DeleteByDate(date)
				if err != nil {
					return err
				}
				for _, n := range report.Deleted {
					fmt.Fprintf(out, "Deleted %s\n", n.Label())
				}
				fmt.Fprintf(out, "%d notes deleted, %d directories removed\n", len(report.Deleted), len(report.Pruned))
				return nil

			case category != "":
				if err := sure("Are you sure you want to delete category %s and all its notes", category); err != nil {
					return err
				}
				if err := a.engine.DeleteScope(store.Category(category)); err != nil {
					return err
				}
				fmt.Fprintf(out, "Deleted category %s\n", category)
				return nil
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else if name, err = askRequired("Name: "); err != nil {
				return err
			}
			if err := sure("Are you sure you want to delete %s", name); err != nil {
				return err
			}

			res, err := a.engine.Delete(cmd.Context(), name)
			if err := finish(res, err); err != nil {
				return err
			}
			if res.Outcome == note.Done {
				fmt.Fprintf(out, "Deleted %s\n", res.Note.Label())
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "delete every note created on this date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "delete a whole category")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	cmd.MarkFlagsMutuallyExclusive("date", "category")
	return cmd
}
