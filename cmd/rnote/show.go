package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vinayprograms/rnote/internal/note"
	"github.com/vinayprograms/rnote/internal/store"
	"github.com/vinayprograms/rnote/internal/tui"
)

func newShowCmd() *cobra.Command {
	var (
		all      bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Render a note in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}

			var notes []store.Note
			switch {
			case all:
				if notes, err = a.store.ListAll(); err != nil {
					return err
				}
			case category != "" && len(args) == 0:
				if notes, err = a.store.ListInScope(store.Category(category)); err != nil {
					return err
				}
			default:
				var name string
				if len(args) > 0 {
					name = args[0]
				} else if name, err = askRequired("Name: "); err != nil {
					return err
				}
				n, err := locate(cmd, a, name, category)
				if err != nil {
					return err
				}
				notes = []store.Note{n}
			}

			out := cmd.OutOrStdout()
			for _, n := range notes {
				data, err := a.store.Read(n)
				if err != nil {
					return err
				}
				rendered, err := tui.Render(data, a.cfg.Wrap)
				if err != nil {
					return err
				}
				fmt.Fprint(out, rendered)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "render every note")
	cmd.Flags().StringVarP(&category, "category", "c", "", "render the notes of a category, or narrow NAME to it")
	cmd.MarkFlagsMutuallyExclusive("all", "category")
	return cmd
}

// locate resolves name to one note, asking the chooser when it exists in
// several scopes. A non-empty category narrows the candidates.
func locate(cmd *cobra.Command, a *app, name, category string) (store.Note, error) {
	if category == "" {
		n, outcome, err := a.engine.Locate(cmd.Context(), name)
		if err != nil {
			return store.Note{}, err
		}
		if outcome == note.Aborted {
			return store.Note{}, errAborted
		}
		return n, nil
	}

	path, err := a.store.NotePath(name, store.Category(category))
	if err != nil {
		return store.Note{}, err
	}
	candidates, err := a.store.FindByName(name)
	if err != nil {
		return store.Note{}, err
	}
	for _, n := range candidates {
		if n.Path == path {
			return n, nil
		}
	}
	return store.Note{}, fmt.Errorf("%s in %s: %w", name, category, store.ErrNotFound)
}
