package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnsureScopeDir(t *testing.T) {
	s := newTestStore(t)

	dir, err := s.EnsureScopeDir(Category("work"))
	if err != nil {
		t.Fatalf("EnsureScopeDir failed: %v", err)
	}
	if dir != filepath.Join(s.Root(), "work") {
		t.Errorf("EnsureScopeDir = %s, want %s", dir, filepath.Join(s.Root(), "work"))
	}

	for _, p := range []string{s.Root(), dir} {
		info, err := os.Stat(p)
		if err != nil {
			t.Fatalf("stat %s: %v", p, err)
		}
		if info.Mode().Perm() != 0o700 {
			t.Errorf("%s mode = %o, want 700", p, info.Mode().Perm())
		}
	}

	// loosen and ensure again: permissions are reasserted
	if err := os.Chmod(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, err := s.EnsureScopeDir(Category("work")); err != nil {
		t.Fatalf("second EnsureScopeDir failed: %v", err)
	}
	info, _ := os.Stat(dir)
	if info.Mode().Perm() != 0o700 {
		t.Errorf("mode after second call = %o, want 700", info.Mode().Perm())
	}
}

func TestPruneEmptyDirs(t *testing.T) {
	s := newTestStore(t)

	writeNote(t, s, "work", "kept", "body")
	for _, d := range []string{"empty", "nested/inner", "2024-01-01"} {
		if err := os.MkdirAll(filepath.Join(s.Root(), d), 0700); err != nil {
			t.Fatal(err)
		}
	}

	pruned, err := s.PruneEmptyDirs()
	if err != nil {
		t.Fatalf("PruneEmptyDirs failed: %v", err)
	}

	want := []string{
		filepath.Join(s.Root(), "nested", "inner"),
		filepath.Join(s.Root(), "nested"),
		filepath.Join(s.Root(), "empty"),
		filepath.Join(s.Root(), "2024-01-01"),
	}
	if diff := cmp.Diff(want, pruned); diff != "" {
		t.Errorf("pruned dirs mismatch (-want +got):\n%s", diff)
	}

	if _, err := os.Stat(filepath.Join(s.Root(), "work", "kept.md")); err != nil {
		t.Errorf("note in non-empty dir was touched: %v", err)
	}
	if _, err := os.Stat(s.Root()); err != nil {
		t.Errorf("root must survive pruning: %v", err)
	}
}

func TestPruneEmptyDirs_MissingRoot(t *testing.T) {
	s := newTestStore(t)

	pruned, err := s.PruneEmptyDirs()
	if err != nil {
		t.Errorf("PruneEmptyDirs on missing root = %v, want nil", err)
	}
	if len(pruned) != 0 {
		t.Errorf("pruned = %v, want none", pruned)
	}
}

func TestRemoveScope(t *testing.T) {
	s := newTestStore(t)

	writeNote(t, s, "work", "a", "")
	writeNote(t, s, "work", "b", "")
	writeNote(t, s, "home", "c", "")

	if err := s.RemoveScope(Category("work")); err != nil {
		t.Fatalf("RemoveScope failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Root(), "work")); !os.IsNotExist(err) {
		t.Error("scope dir still exists")
	}
	if _, err := os.Stat(filepath.Join(s.Root(), "home", "c.md")); err != nil {
		t.Errorf("other scope was touched: %v", err)
	}

	if err := s.RemoveScope(Category("work")); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("RemoveScope on missing dir = %v, want ErrCategoryNotFound", err)
	}
}

func TestRemoveAll(t *testing.T) {
	s := newTestStore(t)

	writeNote(t, s, "work", "a", "")
	if err := s.RemoveAll(); err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	if _, err := os.Stat(s.Root()); !os.IsNotExist(err) {
		t.Error("root still exists after RemoveAll")
	}
}
