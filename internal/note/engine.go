// Package note implements the note lifecycle (create, edit, delete, search)
// on top of the store, delegating to an editor and an interactive chooser.
package note

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/vinayprograms/rnote/internal/store"
)

// Outcome says whether an operation ran to completion or the user backed out.
type Outcome int

const (
	Done Outcome = iota
	Aborted
)

func (o Outcome) String() string {
	if o == Aborted {
		return "aborted"
	}
	return "done"
}

// Result is the outcome of an interactive operation and the note it acted on.
type Result struct {
	Outcome Outcome
	Note    store.Note
}

// DateReport lists what DeleteByDate removed.
type DateReport struct {
	Deleted []store.Note
	Pruned  []string
}

// Engine runs note operations. It holds no state between calls.
type Engine struct {
	store    *store.Store
	launcher Launcher
	chooser  Chooser
	logger   *slog.Logger
}

// NewEngine wires the store to its collaborators. A nil logger discards.
func NewEngine(s *store.Store, launcher Launcher, chooser Chooser, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{store: s, launcher: launcher, chooser: chooser, logger: logger}
}

// Store returns the underlying store.
func (e *Engine) Store() *store.Store { return e.store }

// Create writes a new note with front matter and opens it in the editor. The
// file stays on disk if the editor fails.
func (e *Engine) Create(ctx context.Context, name string, scope store.Scope) (store.Note, error) {
	n, err := e.store.CreateNote(name, scope, "")
	if err != nil {
		return store.Note{}, err
	}
	e.logger.Info("created note", "note", n.Label())

	if err := e.open(ctx, n); err != nil {
		return n, err
	}
	return n, nil
}

// Delete removes the note called name, asking which one when several scopes
// hold it, and prunes directories left empty.
func (e *Engine) Delete(ctx context.Context, name string) (Result, error) {
	candidates, err := e.store.FindByName(name)
	if err != nil {
		return Result{}, err
	}

	n, ok, err := e.pick(ctx, fmt.Sprintf("Which %q to delete?", name), candidates)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Outcome: Aborted}, nil
	}

	if err := e.store.RemoveNote(n); err != nil {
		return Result{}, err
	}
	e.logger.Info("deleted note", "note", n.Label())

	if _, err := e.store.PruneEmptyDirs(); err != nil {
		return Result{Outcome: Done, Note: n}, err
	}
	return Result{Outcome: Done, Note: n}, nil
}

// DeleteScope removes a whole category or date directory. It does not ask.
func (e *Engine) DeleteScope(scope store.Scope) error {
	if err := e.store.RemoveScope(scope); err != nil {
		return err
	}
	e.logger.Info("deleted scope", "scope", scope.String())
	return nil
}

// DeleteByDate removes every note whose filesystem creation date is date
// (YYYY-MM-DD, local time), wherever it lives, then prunes empty directories.
func (e *Engine) DeleteByDate(date string) (DateReport, error) {
	if _, err := store.OnDate(date); err != nil {
		return DateReport{}, err
	}

	var report DateReport
	notes, err := e.store.ListAll()
	if errors.Is(err, store.ErrNotFound) {
		return report, nil
	}
	if err != nil {
		return report, err
	}

	for _, n := range notes {
		created, err := e.store.CreatedAt(n)
		if err != nil {
			return report, err
		}
		if created.In(time.Local).Format(store.DateLayout) != date {
			continue
		}
		if err := e.store.RemoveNote(n); err != nil {
			return report, err
		}
		e.logger.Info("deleted note", "note", n.Label(), "created", date)
		report.Deleted = append(report.Deleted, n)
	}

	if len(report.Deleted) == 0 {
		return report, nil
	}
	report.Pruned, err = e.store.PruneEmptyDirs()
	return report, err
}

// Modify opens the note called name in the editor. No match and a cancelled
// choice are both Aborted, not errors.
func (e *Engine) Modify(ctx context.Context, name string) (Result, error) {
	n, outcome, err := e.Locate(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return Result{Outcome: Aborted}, nil
	}
	if err != nil || outcome == Aborted {
		return Result{Outcome: outcome}, err
	}

	if err := e.open(ctx, n); err != nil {
		return Result{}, err
	}
	return Result{Outcome: Done, Note: n}, nil
}

// Search lets the user pick among the notes containing term and opens the
// pick in the editor. No match and a cancelled choice are Aborted.
func (e *Engine) Search(ctx context.Context, term string) (Result, error) {
	matches, err := e.store.FindByContent(term)
	if err != nil {
		return Result{}, err
	}
	if len(matches) == 0 {
		return Result{Outcome: Aborted}, nil
	}

	// a single hit is still shown so the user sees what matched
	n, ok, err := e.choose(ctx, fmt.Sprintf("Notes containing %q", term), matches)
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{Outcome: Aborted}, nil
	}

	if err := e.open(ctx, n); err != nil {
		return Result{}, err
	}
	return Result{Outcome: Done, Note: n}, nil
}

// WipeAll deletes every note and the storage root. There is no undo.
func (e *Engine) WipeAll() error {
	if err := e.store.RemoveAll(); err != nil {
		return err
	}
	e.logger.Info("wiped storage root", "path", e.store.Root())
	return nil
}

// Locate resolves name to a single note, asking the chooser when several
// scopes hold one. It returns ErrNotFound when there is none.
func (e *Engine) Locate(ctx context.Context, name string) (store.Note, Outcome, error) {
	candidates, err := e.store.FindByName(name)
	if err != nil {
		return store.Note{}, Aborted, err
	}
	n, ok, err := e.pick(ctx, fmt.Sprintf("Several notes named %q", name), candidates)
	if err != nil {
		return store.Note{}, Aborted, err
	}
	if !ok {
		return store.Note{}, Aborted, nil
	}
	return n, Done, nil
}

func (e *Engine) pick(ctx context.Context, title string, candidates []store.Note) (store.Note, bool, error) {
	if len(candidates) == 1 {
		return candidates[0], true, nil
	}
	return e.choose(ctx, title, candidates)
}

func (e *Engine) choose(ctx context.Context, title string, candidates []store.Note) (store.Note, bool, error) {
	idx, ok, err := e.chooser.Choose(ctx, title, noteLabels(candidates))
	if err != nil || !ok {
		return store.Note{}, false, err
	}
	if idx < 0 || idx >= len(candidates) {
		return store.Note{}, false, fmt.Errorf("chooser returned index %d of %d", idx, len(candidates))
	}
	return candidates[idx], true, nil
}

func (e *Engine) open(ctx context.Context, n store.Note) error {
	e.logger.Debug("opening editor", "path", n.Path)
	if err := e.launcher.Open(ctx, n.Path); err != nil {
		if errors.Is(err, store.ErrEditor) {
			return err
		}
		return fmt.Errorf("%w: %w", store.ErrEditor, err)
	}
	return nil
}

func noteLabels(notes []store.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Label()
	}
	return out
}
