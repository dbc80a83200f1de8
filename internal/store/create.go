package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// CreateNote writes a new note with generated front matter followed by body.
// It fails with ErrConflict, creating nothing, if scope already has a note
// called name. The file is created owner read/write only.
func (s *Store) CreateNote(name string, scope Scope, body string) (Note, error) {
	path, err := s.NotePath(name, scope)
	if err != nil {
		return Note{}, err
	}
	if _, err := s.EnsureScopeDir(scope); err != nil {
		return Note{}, err
	}

	dup, err := s.HasDuplicate(name, scope)
	if err != nil {
		return Note{}, err
	}
	if dup {
		return Note{}, fmt.Errorf("%s in %s: %w", name, scope, ErrConflict)
	}

	// O_EXCL turns a lost race with another invocation into a conflict too
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerms)
	if errors.Is(err, fs.ErrExist) {
		return Note{}, fmt.Errorf("%s in %s: %w", name, scope, ErrConflict)
	}
	if err != nil {
		return Note{}, ioErr("create", path, err)
	}
	defer f.Close()

	if err := f.Chmod(filePerms); err != nil {
		return Note{}, ioErr("chmod", path, err)
	}

	// same calendar day as the dated directory
	fm := NewFrontMatter(name, s.author, s.now().Local())
	if _, err := f.WriteString(fm.Render() + body); err != nil {
		return Note{}, ioErr("write", path, err)
	}
	if err := f.Close(); err != nil {
		return Note{}, ioErr("close", path, err)
	}

	s.logger.Debug("created note", "name", name, "scope", scope.String(), "path", path)
	return s.noteAt(path), nil
}
