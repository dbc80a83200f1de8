// Package editor launches the user's configured editor on a note file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vinayprograms/rnote/internal/store"
)

// Launcher runs an editor command line, which may carry its own flags
// (e.g. "code --wait"), against a file and waits for it to exit.
type Launcher struct {
	editor string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Launcher for the given editor command line attached to the
// process's terminal.
func New(editor string) *Launcher {
	return &Launcher{
		editor: editor,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command builds the editor invocation for path without running it.
func (l *Launcher) Command(ctx context.Context, path string) (*exec.Cmd, error) {
	name, args, err := split(l.editor)
	if err != nil {
		return nil, err
	}
	args = append(args, path)
	return exec.CommandContext(ctx, name, args...), nil
}

// Open runs the editor on path and blocks until it exits. A missing binary or
// non-zero exit is reported as store.ErrEditor.
func (l *Launcher) Open(ctx context.Context, path string) error {
	cmd, err := l.Command(ctx, path)
	if err != nil {
		return err
	}
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %s exited with status %d", store.ErrEditor, cmd.Args[0], exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %w", store.ErrEditor, err)
	}
	return nil
}

// split breaks an editor command line into a program and its arguments,
// expanding a leading ~/ in the program path.
func split(editor string) (string, []string, error) {
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return "", nil, fmt.Errorf("%w: no editor configured", store.ErrEditor)
	}

	name := parts[0]
	if strings.HasPrefix(name, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(home, name[2:])
		}
	}
	return name, parts[1:], nil
}
