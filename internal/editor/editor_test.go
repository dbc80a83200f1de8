package editor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vinayprograms/rnote/internal/store"
)

func TestSplit(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		editor   string
		wantName string
		wantArgs []string
	}{
		{"vim", "vim", []string{}},
		{"code --wait", "code", []string{"--wait"}},
		{"  emacs   -nw ", "emacs", []string{"-nw"}},
		{"~/bin/ed -s", filepath.Join(home, "bin/ed"), []string{"-s"}},
	}

	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			name, args, err := split(tt.editor)
			if err != nil {
				t.Fatalf("split(%q) error: %v", tt.editor, err)
			}
			if name != tt.wantName {
				t.Errorf("name = %q, want %q", name, tt.wantName)
			}
			if diff := cmp.Diff(tt.wantArgs, args); diff != "" {
				t.Errorf("args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitEmpty(t *testing.T) {
	if _, _, err := split("   "); !errors.Is(err, store.ErrEditor) {
		t.Errorf("split(blank) = %v, want ErrEditor", err)
	}
}

func TestCommandAppendsPath(t *testing.T) {
	l := New("code --wait")
	cmd, err := l.Command(context.Background(), "/tmp/note.md")
	if err != nil {
		t.Fatalf("Command failed: %v", err)
	}
	if diff := cmp.Diff([]string{"code", "--wait", "/tmp/note.md"}, cmd.Args); diff != "" {
		t.Errorf("args mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenSuccess(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}

	l := New("true")
	l.Stdin, l.Stdout, l.Stderr = nil, &bytes.Buffer{}, &bytes.Buffer{}
	if err := l.Open(context.Background(), filepath.Join(t.TempDir(), "n.md")); err != nil {
		t.Errorf("Open with true failed: %v", err)
	}
}

func TestOpenFailures(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skip("false not available")
	}

	tests := []struct {
		name   string
		editor string
	}{
		{"non-zero exit", "false"},
		{"missing binary", filepath.Join(os.TempDir(), "rnote-no-such-editor")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.editor)
			l.Stdin, l.Stdout, l.Stderr = nil, &bytes.Buffer{}, &bytes.Buffer{}
			err := l.Open(context.Background(), "/tmp/n.md")
			if !errors.Is(err, store.ErrEditor) {
				t.Errorf("Open() = %v, want ErrEditor", err)
			}
		})
	}
}
