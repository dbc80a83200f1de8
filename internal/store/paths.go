package store

import (
	"fmt"
	"path/filepath"
)

// BasePath returns the storage root for a data home directory.
func BasePath(dataHome string) (string, error) {
	if dataHome == "" {
		return "", fmt.Errorf("%w: data home not set", ErrConfig)
	}
	return filepath.Join(dataHome, "rnote"), nil
}

// ScopePath returns the directory of scope. It does not touch the filesystem.
func (s *Store) ScopePath(scope Scope) (string, error) {
	dir := scope.Dir(s.now())
	if err := validateName("category", dir); err != nil {
		return "", err
	}
	return filepath.Join(s.root, dir), nil
}

// NotePath returns the file path of note name in scope.
func (s *Store) NotePath(name string, scope Scope) (string, error) {
	if err := validateName("note name", name); err != nil {
		return "", err
	}
	dir, err := s.ScopePath(scope)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name+noteExt), nil
}
