package main

import (
	"fmt"
	"log/slog"

	"github.com/vinayprograms/rnote/internal/config"
	"github.com/vinayprograms/rnote/internal/editor"
	"github.com/vinayprograms/rnote/internal/note"
	"github.com/vinayprograms/rnote/internal/store"
	"github.com/vinayprograms/rnote/internal/tui"
)

// app is the wiring shared by every subcommand.
type app struct {
	cfg    *config.Config
	store  *store.Store
	editor *editor.Launcher
	engine *note.Engine
}

// newApp loads the configuration and builds the store and engine. Commands
// that open an editor pass withEditor, which prompts for one on first run and
// saves the answer.
func newApp(withEditor bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	if withEditor {
		if err := ensureEditor(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	s, err := store.New(cfg, store.WithLogger(slog.Default()))
	if err != nil {
		return nil, err
	}

	launcher := editor.New(cfg.Editor)
	return &app{
		cfg:    cfg,
		store:  s,
		editor: launcher,
		engine: note.NewEngine(s, launcher, tui.NewChooser(), slog.Default()),
	}, nil
}

func ensureEditor(cfg *config.Config) error {
	if cfg.Editor != "" {
		return nil
	}

	answer, err := askRequired("Your text editor: ")
	if err != nil {
		return err
	}
	if err := cfg.Set("editor", answer); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save editor: %w", err)
	}
	slog.Debug("saved editor", "editor", answer, "config", cfg.File())
	return nil
}
