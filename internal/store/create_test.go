package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vinayprograms/rnote/internal/config"
)

func TestCreateNote(t *testing.T) {
	s := newTestStore(t)

	n, err := s.CreateNote("meeting", ScopeOf(""), "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	want := filepath.Join(s.Root(), "2024-03-01", "meeting.md")
	if n.Path != want {
		t.Errorf("path = %s, want %s", n.Path, want)
	}
	if n.Name != "meeting" || n.Scope != "2024-03-01" {
		t.Errorf("note = %+v", n)
	}

	info, err := os.Stat(n.Path)
	if err != nil {
		t.Fatalf("note not created: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %o, want 600", info.Mode().Perm())
	}

	data, _ := os.ReadFile(n.Path)
	if !strings.HasPrefix(string(data), "---\ntitle: meeting\n") {
		t.Errorf("content = %q, want front matter with title: meeting", data)
	}
}

func TestCreateNote_Conflict(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateNote("x", Category("work"), "first"); err != nil {
		t.Fatalf("first CreateNote failed: %v", err)
	}

	dup, err := s.HasDuplicate("x", Category("work"))
	if err != nil || !dup {
		t.Errorf("HasDuplicate after create = %v, %v; want true", dup, err)
	}

	_, err = s.CreateNote("x", Category("work"), "second")
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second CreateNote = %v, want ErrConflict", err)
	}

	entries, _ := os.ReadDir(filepath.Join(s.Root(), "work"))
	if len(entries) != 1 {
		t.Errorf("work holds %d files, want 1", len(entries))
	}
	data, _ := os.ReadFile(filepath.Join(s.Root(), "work", "x.md"))
	if !strings.HasSuffix(string(data), "first") {
		t.Errorf("original note was overwritten: %q", data)
	}

	// same name in another scope is fine
	if _, err := s.CreateNote("x", Category("home"), ""); err != nil {
		t.Errorf("CreateNote in another scope failed: %v", err)
	}
}

func TestCreateNote_InvalidNameCreatesNothing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreateNote("../escape", Category("work"), ""); !errors.Is(err, ErrInvalidName) {
		t.Errorf("CreateNote(../escape) = %v, want ErrInvalidName", err)
	}
	if _, err := os.Stat(s.Root()); !os.IsNotExist(err) {
		t.Error("invalid create must not touch the filesystem")
	}
}

func TestCreatedAt(t *testing.T) {
	s := newTestStore(t)

	before := time.Now().Add(-time.Minute)
	n, err := s.CreateNote("fresh", Category("work"), "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	created, err := s.CreatedAt(n)
	if err != nil {
		t.Fatalf("CreatedAt failed: %v", err)
	}
	if created.Before(before) || created.After(time.Now().Add(time.Minute)) {
		t.Errorf("CreatedAt = %v, want around now", created)
	}
}

func TestCreateNote_HeaderDateMatchesDirectory(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("UTC+10", 10*60*60)
	t.Cleanup(func() { time.Local = orig })

	// 20:00 UTC on the 1st is already the 2nd in UTC+10
	utcClock := func() time.Time { return time.Date(2024, time.March, 1, 20, 0, 0, 0, time.UTC) }
	cfg := &config.Config{DataHome: t.TempDir(), Author: "tester"}
	s, err := New(cfg, WithClock(utcClock), WithLogger(nil))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	n, err := s.CreateNote("late", Today(), "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if n.Scope != "2024-03-02" {
		t.Errorf("scope = %s, want 2024-03-02", n.Scope)
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		t.Fatal(err)
	}
	fm, _, ok := ParseFrontMatter(data)
	if !ok {
		t.Fatal("front matter not parsed")
	}
	if fm.Date != "02-03-2024" {
		t.Errorf("header date = %s, want 02-03-2024 to match the directory", fm.Date)
	}
}
