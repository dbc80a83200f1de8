package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/note"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// errAborted is returned by commands the user backed out of.
var errAborted = errors.New("aborted")

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rnote",
		Short: "A personal note store kept as markdown files",
		Long: `rnote keeps markdown notes under $XDG_DATA_HOME/rnote, filed by creation date
or by category, and opens them in your editor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(
		newNewCmd(),
		newRemoveCmd(),
		newEditCmd(),
		newListCmd(),
		newShowCmd(),
		newSearchCmd(),
		newPanicCmd(),
		newBrowseCmd(),
		newMCPCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	return execute(ctx, newRootCmd(), args)
}

func execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errAborted), errors.Is(err, context.Canceled):
		fmt.Fprintln(root.OutOrStdout(), "Aborted.")
		return 0
	default:
		fmt.Fprintf(root.ErrOrStderr(), "error: %v\n", err)
		return 1
	}
}

// finish turns an Aborted outcome into errAborted.
func finish(res note.Result, err error) error {
	if err != nil {
		return err
	}
	if res.Outcome == note.Aborted {
		return errAborted
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rnote",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rnote version %s\n", version)
		},
	}
}
