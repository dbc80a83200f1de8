package main

import (
	"github.com/spf13/cobra"
)

func newSearchCmd() *cobra.Command {
	var byName bool

	cmd := &cobra.Command{
		Use:     "search <term>",
		Aliases: []string{"s"},
		Short:   "Find notes containing a term and open the one you pick",
		Long: `Search every note for TERM (case-sensitive) and choose which match to open.
With --name, TERM is an exact note name instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}

			if byName {
				return finish(a.engine.Modify(cmd.Context(), args[0]))
			}
			return finish(a.engine.Search(cmd.Context(), args[0]))
		},
	}

	cmd.Flags().BoolVarP(&byName, "name", "n", false, "match note names instead of contents")
	return cmd
}
