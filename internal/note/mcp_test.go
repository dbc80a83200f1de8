package note

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinayprograms/rnote/internal/config"
	"github.com/vinayprograms/rnote/internal/store"
)

func setupTestMCP(t *testing.T) (*MCPServer, *store.Store) {
	t.Helper()

	cfg := &config.Config{DataHome: t.TempDir(), Author: "agent"}
	s, err := store.New(cfg, store.WithClock(func() time.Time { return march1 }), store.WithLogger(nil))
	require.NoError(t, err)

	return NewMCPServer(s, "test"), s
}

func TestMCP_CreateAndGetNote(t *testing.T) {
	server, s := setupTestMCP(t)
	ctx := context.Background()

	_, created, err := server.createNote(ctx, nil, CreateNoteArgs{Name: "standup", Content: "- shipped it\n"})
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01", created.Note.Scope)
	assert.Equal(t, filepath.Join(s.Root(), "2024-03-01", "standup.md"), created.Note.Path)

	_, got, err := server.getNote(ctx, nil, GetNoteArgs{Name: "standup"})
	require.NoError(t, err)
	assert.Equal(t, "standup", got.Title)
	assert.Equal(t, "agent", got.Author)
	assert.Equal(t, "01-03-2024", got.Date)
	assert.Contains(t, got.Content, "- shipped it\n")

	_, _, err = server.createNote(ctx, nil, CreateNoteArgs{Name: "standup"})
	assert.ErrorIs(t, err, store.ErrConflict)
}

func TestMCP_ListNotes(t *testing.T) {
	server, s := setupTestMCP(t)
	ctx := context.Background()

	_, list, err := server.listNotes(ctx, nil, ListNotesArgs{})
	require.NoError(t, err)
	assert.Zero(t, list.Count, "an empty store lists nothing")

	for _, args := range []CreateNoteArgs{
		{Name: "a", Scope: "work"},
		{Name: "b", Scope: "work"},
		{Name: "c", Scope: "home"},
	} {
		_, err := s.CreateNote(args.Name, store.ScopeOf(args.Scope), "")
		require.NoError(t, err)
	}

	_, list, err = server.listNotes(ctx, nil, ListNotesArgs{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Count)

	_, list, err = server.listNotes(ctx, nil, ListNotesArgs{Scope: "work"})
	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)

	_, list, err = server.listNotes(ctx, nil, ListNotesArgs{Glob: "home/*"})
	require.NoError(t, err)
	require.Equal(t, 1, list.Count)
	assert.Equal(t, "c", list.Notes[0].Name)
}

func TestMCP_FindAndSearch(t *testing.T) {
	server, s := setupTestMCP(t)
	ctx := context.Background()

	_, err := s.CreateNote("x", store.Category("a"), "needle here")
	require.NoError(t, err)
	_, err = s.CreateNote("x", store.Category("b"), "hay")
	require.NoError(t, err)

	_, found, err := server.findNotes(ctx, nil, FindNotesArgs{Name: "x"})
	require.NoError(t, err)
	assert.Equal(t, 2, found.Count)

	_, _, err = server.findNotes(ctx, nil, FindNotesArgs{Name: "y"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	_, hits, err := server.searchNotes(ctx, nil, SearchNotesArgs{Term: "needle"})
	require.NoError(t, err)
	require.Equal(t, 1, hits.Count)
	assert.Equal(t, "a", hits.Notes[0].Scope)

	_, hits, err = server.searchNotes(ctx, nil, SearchNotesArgs{Term: "absent"})
	require.NoError(t, err)
	assert.Zero(t, hits.Count)
}

func TestMCP_DeleteNote(t *testing.T) {
	server, s := setupTestMCP(t)
	ctx := context.Background()

	a, err := s.CreateNote("x", store.Category("a"), "")
	require.NoError(t, err)
	b, err := s.CreateNote("x", store.Category("b"), "")
	require.NoError(t, err)

	_, _, err = server.deleteNote(ctx, nil, DeleteNoteArgs{Name: "x"})
	assert.ErrorContains(t, err, "several scopes")
	assert.FileExists(t, a.Path)
	assert.FileExists(t, b.Path)

	_, deleted, err := server.deleteNote(ctx, nil, DeleteNoteArgs{Name: "x", Scope: "b"})
	require.NoError(t, err)
	assert.Equal(t, "b", deleted.Note.Scope)
	assert.Equal(t, []string{filepath.Dir(b.Path)}, deleted.Pruned)
	assert.NoFileExists(t, b.Path)

	_, _, err = server.deleteNote(ctx, nil, DeleteNoteArgs{Name: "x", Scope: "b"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}
