package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const panicPhrase = "delete all notes"

func newPanicCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "panic",
		Short: "Delete every note and the storage directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "This removes %s and everything in it.\n", a.store.Root())
			answer, err := ask(fmt.Sprintf("Type %q to continue: ", panicPhrase))
			if err != nil {
				return err
			}
			if answer != panicPhrase {
				return errAborted
			}

			if err := a.engine.WipeAll(); err != nil {
				return err
			}
			fmt.Fprintln(out, "All notes deleted.")
			return nil
		},
	}
}
