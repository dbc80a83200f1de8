package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/vinayprograms/rnote/internal/parallel"
)

// walkNotes returns every regular file below dir in lexical order.
func (s *Store) walkNotes(dir string) ([]Note, error) {
	var notes []Note
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			notes = append(notes, s.noteAt(path))
		}
		return nil
	})
	return notes, err
}

// ListAll returns every note in the store. An empty or missing store is
// ErrNotFound.
func (s *Store) ListAll() ([]Note, error) {
	notes, err := s.walkNotes(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no notes yet: %w", ErrNotFound)
	}
	if err != nil {
		return nil, ioErr("walk", s.root, err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("no notes yet: %w", ErrNotFound)
	}
	return notes, nil
}

// ListInScope returns the notes of one scope. A missing directory is
// ErrCategoryNotFound and an empty one ErrCategoryEmpty.
func (s *Store) ListInScope(scope Scope) ([]Note, error) {
	dir, err := s.ScopePath(scope)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return nil, fmt.Errorf("%s: %w", scope, ErrCategoryNotFound)
	}
	if err != nil {
		return nil, ioErr("stat", dir, err)
	}

	notes, err := s.walkNotes(dir)
	if err != nil {
		return nil, ioErr("walk", dir, err)
	}
	if len(notes) == 0 {
		return nil, fmt.Errorf("%s: %w", scope, ErrCategoryEmpty)
	}
	return notes, nil
}

// FindByName returns every note called name across all scopes, in traversal
// order. No match is ErrNotFound.
func (s *Store) FindByName(name string) ([]Note, error) {
	if err := validateName("note name", name); err != nil {
		return nil, err
	}

	file := name + noteExt
	var matches []Note
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && d.Name() == file {
			matches = append(matches, s.noteAt(path))
		}
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, ioErr("walk", s.root, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return matches, nil
}

// FindByContent returns every note whose contents contain term (case
// sensitive). Unlike FindByName, no match is an empty result, not an error.
func (s *Store) FindByContent(term string) ([]Note, error) {
	notes, err := s.walkNotes(s.root)
	if errors.Is(err, fs.ErrNotExist) {
		return []Note{}, nil
	}
	if err != nil {
		return nil, ioErr("walk", s.root, err)
	}

	needle := []byte(term)
	matches, err := parallel.Filter(notes, func(n Note) (bool, error) {
		data, err := os.ReadFile(n.Path)
		if err != nil {
			return false, ioErr("read", n.Path, err)
		}
		return bytes.Contains(data, needle), nil
	})
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []Note{}
	}
	return matches, nil
}

// HasDuplicate reports whether scope already holds a note called name.
func (s *Store) HasDuplicate(name string, scope Scope) (bool, error) {
	path, err := s.NotePath(name, scope)
	if err != nil {
		return false, err
	}
	_, err = os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, ioErr("stat", path, err)
	}
}

// ListMatching returns the notes whose "scope/name.md" path matches a
// doublestar glob such as "work/*" or "2024-*/**".
func (s *Store) ListMatching(pattern string) ([]Note, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad glob %q", ErrInvalidName, pattern)
	}

	notes, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	var matches []Note
	for _, n := range notes {
		rel, err := filepath.Rel(s.root, n.Path)
		if err != nil {
			continue
		}
		ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel))
		if ok {
			matches = append(matches, n)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%s: %w", pattern, ErrNotFound)
	}
	return matches, nil
}
