package main

import (
	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "edit [name]",
		Aliases: []string{"e"},
		Short:   "Open an existing note in your editor",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			} else if name, err = askRequired("Name: "); err != nil {
				return err
			}

			return finish(a.engine.Modify(cmd.Context(), name))
		},
	}
}
