package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/tui"
)

func newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "browse",
		Aliases: []string{"b"},
		Short:   "Browse, edit and delete notes in a full-screen list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			return tui.NewBrowser(a.store, a.editor, slog.Default()).Run(cmd.Context())
		},
	}
}
