package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Note is a markdown file in a scope directory.
type Note struct {
	Name  string
	Scope string // directory relative to the root
	Path  string
}

// Label is the human readable "scope/name" form.
func (n Note) Label() string {
	if n.Scope == "" {
		return n.Name
	}
	return n.Scope + "/" + n.Name
}

func (s *Store) noteAt(path string) Note {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	scope := filepath.ToSlash(filepath.Dir(rel))
	if scope == "." {
		scope = ""
	}
	return Note{
		Name:  strings.TrimSuffix(filepath.Base(path), noteExt),
		Scope: scope,
		Path:  path,
	}
}

// Read returns the raw file contents of n.
func (s *Store) Read(n Note) ([]byte, error) {
	data, err := os.ReadFile(n.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, ioErr("read", n.Path, err)
	}
	return data, nil
}

// CreatedAt returns the filesystem creation time of n, or its modification
// time where the platform does not record one.
func (s *Store) CreatedAt(n Note) (time.Time, error) {
	info, err := os.Stat(n.Path)
	if err != nil {
		return time.Time{}, ioErr("stat", n.Path, err)
	}
	return birthTime(n.Path, info), nil
}
