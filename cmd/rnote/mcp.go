package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/note"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the note store to MCP clients over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}

			slog.Debug("starting MCP server", "root", a.store.Root())
			return note.NewMCPServer(a.store, version).Run(cmd.Context())
		},
	}
}
