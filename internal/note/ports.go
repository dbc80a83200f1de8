package note

import "context"

// Launcher opens a file in the user's editor and blocks until it exits.
type Launcher interface {
	Open(ctx context.Context, path string) error
}

// Chooser asks the user to pick one of labels. ok is false when the user
// cancelled; that is not an error.
type Chooser interface {
	Choose(ctx context.Context, title string, labels []string) (index int, ok bool, err error)
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(ctx context.Context, path string) error

func (f LauncherFunc) Open(ctx context.Context, path string) error { return f(ctx, path) }
