package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// EnsureScopeDir creates the scope directory owner-only and tightens the root.
// It returns the directory path.
func (s *Store) EnsureScopeDir(scope Scope) (string, error) {
	dir, err := s.ScopePath(scope)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, dirPerms); err != nil {
		return "", ioErr("mkdir", dir, err)
	}
	// MkdirAll leaves existing directories and the umask alone
	if err := os.Chmod(s.root, dirPerms); err != nil {
		return "", ioErr("chmod", s.root, err)
	}
	if err := os.Chmod(dir, dirPerms); err != nil {
		return "", ioErr("chmod", dir, err)
	}
	return dir, nil
}

// PruneEmptyDirs removes every empty directory below the root, deepest first,
// and returns the removed paths. The root itself is kept. A missing root is
// not an error.
func (s *Store) PruneEmptyDirs() ([]string, error) {
	if _, err := os.Lstat(s.root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var dirs []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != s.root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, ioErr("walk", s.root, err)
	}

	var pruned []string
	// WalkDir visits parents first, so walking backwards empties children
	// before their parents are checked.
	for i := len(dirs) - 1; i >= 0; i-- {
		entries, err := os.ReadDir(dirs[i])
		if err != nil {
			return pruned, ioErr("readdir", dirs[i], err)
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dirs[i]); err != nil {
			return pruned, ioErr("remove", dirs[i], err)
		}
		s.logger.Debug("pruned empty directory", "path", dirs[i])
		pruned = append(pruned, dirs[i])
	}
	return pruned, nil
}

// RemoveScope deletes a scope directory with everything in it.
func (s *Store) RemoveScope(scope Scope) error {
	dir, err := s.ScopePath(scope)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return ErrCategoryNotFound
	}
	if err != nil {
		return ioErr("stat", dir, err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return ioErr("remove", dir, err)
	}
	s.logger.Debug("removed scope", "scope", scope.String(), "path", dir)
	return nil
}

// RemoveNote deletes a single note file.
func (s *Store) RemoveNote(n Note) error {
	if err := os.Remove(n.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNotFound
		}
		return ioErr("remove", n.Path, err)
	}
	s.logger.Debug("removed note", "path", n.Path)
	return nil
}

// RemoveAll deletes the storage root and every note in it.
func (s *Store) RemoveAll() error {
	if err := os.RemoveAll(s.root); err != nil {
		return ioErr("remove", s.root, err)
	}
	s.logger.Debug("removed storage root", "path", s.root)
	return nil
}
