package store

import (
	"errors"
	"fmt"

	"github.com/vinayprograms/rnote/internal/config"
)

var (
	// ErrConfig is returned when required configuration is missing.
	ErrConfig = config.ErrConfig

	ErrNotFound         = errors.New("note not found")
	ErrCategoryNotFound = fmt.Errorf("category not found: %w", ErrNotFound)
	ErrCategoryEmpty    = fmt.Errorf("category empty: %w", ErrNotFound)

	ErrConflict    = errors.New("duplicate in the same category/date, choose another name")
	ErrEditor      = errors.New("editor failed")
	ErrInvalidName = errors.New("invalid name")
)

// IOError is a failed filesystem operation.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func ioErr(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var ioe *IOError
	if errors.As(err, &ioe) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}
