package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/store"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "new [name] [category]",
		Aliases: []string{"n"},
		Short:   "Create a note and open it in your editor",
		Long: `Create a note named NAME. Without CATEGORY the note is filed under today's
date. The name is prompted for when omitted.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}

			var name, category string
			if len(args) > 0 {
				name = args[0]
			} else if name, err = askRequired("Name: "); err != nil {
				return err
			}
			if len(args) > 1 {
				category = args[1]
			}

			n, err := a.engine.Create(cmd.Context(), name, store.ScopeOf(category))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", n.Label())
			return nil
		},
	}
}
