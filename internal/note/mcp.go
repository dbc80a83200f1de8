package note

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/vinayprograms/rnote/internal/store"
)

// MCP Tool Input/Output types

type ListNotesArgs struct {
	Scope string `json:"scope,omitempty" jsonschema:"category or YYYY-MM-DD date; empty lists every note"`
	Glob  string `json:"glob,omitempty" jsonschema:"optional glob over scope/name.md, e.g. work/*"`
}

type ListNotesResult struct {
	Notes []NoteInfo `json:"notes" jsonschema:"matching notes"`
	Count int        `json:"count" jsonschema:"number of notes returned"`
}

type NoteInfo struct {
	Name  string `json:"name" jsonschema:"note name"`
	Scope string `json:"scope" jsonschema:"category or date directory"`
	Path  string `json:"path" jsonschema:"absolute file path"`
}

type FindNotesArgs struct {
	Name string `json:"name" jsonschema:"exact note name without .md"`
}

type FindNotesResult struct {
	Notes []NoteInfo `json:"notes" jsonschema:"notes with that name, one per scope"`
	Count int        `json:"count" jsonschema:"number of matches"`
}

type SearchNotesArgs struct {
	Term string `json:"term" jsonschema:"case-sensitive text to look for"`
}

type SearchNotesResult struct {
	Notes []NoteInfo `json:"notes" jsonschema:"notes containing the term"`
	Count int        `json:"count" jsonschema:"number of matches"`
}

type GetNoteArgs struct {
	Name  string `json:"name" jsonschema:"note name"`
	Scope string `json:"scope,omitempty" jsonschema:"category or date; required when the name exists in several scopes"`
}

type GetNoteResult struct {
	Note    NoteInfo `json:"note" jsonschema:"the note"`
	Title   string   `json:"title,omitempty" jsonschema:"title from front matter"`
	Author  string   `json:"author,omitempty" jsonschema:"author from front matter"`
	Date    string   `json:"date,omitempty" jsonschema:"creation date from front matter, DD-MM-YYYY"`
	Content string   `json:"content" jsonschema:"full file content"`
}

type CreateNoteArgs struct {
	Name    string `json:"name" jsonschema:"note name, unique within its scope"`
	Scope   string `json:"scope,omitempty" jsonschema:"category; empty files the note under today's date"`
	Content string `json:"content,omitempty" jsonschema:"markdown body written after the front matter"`
}

type CreateNoteResult struct {
	Note    NoteInfo `json:"note" jsonschema:"the created note"`
	Message string   `json:"message" jsonschema:"status message"`
}

type DeleteNoteArgs struct {
	Name  string `json:"name" jsonschema:"note name"`
	Scope string `json:"scope,omitempty" jsonschema:"category or date; required when the name exists in several scopes"`
}

type DeleteNoteResult struct {
	Note    NoteInfo `json:"note" jsonschema:"the deleted note"`
	Pruned  []string `json:"pruned,omitempty" jsonschema:"directories removed because they became empty"`
	Message string   `json:"message" jsonschema:"status message"`
}

// MCPServer exposes the note store to MCP clients over stdio.
type MCPServer struct {
	store  *store.Store
	server *mcp.Server
}

// NewMCPServer creates a new MCP server for note operations
func NewMCPServer(s *store.Store, version string) *MCPServer {
	m := &MCPServer{store: s}

	m.server = mcp.NewServer(&mcp.Implementation{
		Name:    "rnote",
		Version: version,
	}, nil)

	m.registerTools()
	return m
}

// Run starts the MCP server on stdio transport
func (m *MCPServer) Run(ctx context.Context) error {
	return m.server.Run(ctx, &mcp.StdioTransport{})
}

func (m *MCPServer) registerTools() {
	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "list_notes",
		Description: "List notes, optionally restricted to one category/date scope or a glob such as work/*.",
	}, m.listNotes)

	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "find_notes",
		Description: "Find notes by exact name. The same name may exist in several categories.",
	}, m.findNotes)

	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "search_notes",
		Description: "Case-sensitive fulltext search across every note.",
	}, m.searchNotes)

	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "get_note",
		Description: "Read a note's content and front matter. Give scope when the name is ambiguous.",
	}, m.getNote)

	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "create_note",
		Description: "Create a note with generated front matter. Without scope the note is filed under today's date. Fails if the scope already has a note with that name.",
	}, m.createNote)

	mcp.AddTool(m.server, &mcp.Tool{
		Name:        "delete_note",
		Description: "Delete a note. This cannot be undone. Give scope when the name is ambiguous.",
	}, m.deleteNote)
}

func (m *MCPServer) listNotes(ctx context.Context, req *mcp.CallToolRequest, args ListNotesArgs) (*mcp.CallToolResult, ListNotesResult, error) {
	var (
		notes []store.Note
		err   error
	)
	switch {
	case args.Glob != "":
		notes, err = m.store.ListMatching(args.Glob)
	case args.Scope != "":
		notes, err = m.store.ListInScope(store.Category(args.Scope))
	default:
		notes, err = m.store.ListAll()
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, ListNotesResult{}, fmt.Errorf("failed to list notes: %w", err)
	}

	infos := toInfos(notes)
	return nil, ListNotesResult{Notes: infos, Count: len(infos)}, nil
}

func (m *MCPServer) findNotes(ctx context.Context, req *mcp.CallToolRequest, args FindNotesArgs) (*mcp.CallToolResult, FindNotesResult, error) {
	if args.Name == "" {
		return nil, FindNotesResult{}, fmt.Errorf("name is required")
	}

	notes, err := m.store.FindByName(args.Name)
	if err != nil {
		return nil, FindNotesResult{}, err
	}

	infos := toInfos(notes)
	return nil, FindNotesResult{Notes: infos, Count: len(infos)}, nil
}

func (m *MCPServer) searchNotes(ctx context.Context, req *mcp.CallToolRequest, args SearchNotesArgs) (*mcp.CallToolResult, SearchNotesResult, error) {
	if args.Term == "" {
		return nil, SearchNotesResult{}, fmt.Errorf("term is required")
	}

	notes, err := m.store.FindByContent(args.Term)
	if err != nil {
		return nil, SearchNotesResult{}, fmt.Errorf("search failed: %w", err)
	}

	infos := toInfos(notes)
	return nil, SearchNotesResult{Notes: infos, Count: len(infos)}, nil
}

func (m *MCPServer) getNote(ctx context.Context, req *mcp.CallToolRequest, args GetNoteArgs) (*mcp.CallToolResult, GetNoteResult, error) {
	n, err := m.resolve(args.Name, args.Scope)
	if err != nil {
		return nil, GetNoteResult{}, err
	}

	data, err := m.store.Read(n)
	if err != nil {
		return nil, GetNoteResult{}, err
	}

	result := GetNoteResult{Note: toInfo(n), Content: string(data)}
	if fm, _, ok := store.ParseFrontMatter(data); ok {
		result.Title = fm.Title
		result.Author = fm.Author
		result.Date = fm.Date
	}
	return nil, result, nil
}

func (m *MCPServer) createNote(ctx context.Context, req *mcp.CallToolRequest, args CreateNoteArgs) (*mcp.CallToolResult, CreateNoteResult, error) {
	if args.Name == "" {
		return nil, CreateNoteResult{}, fmt.Errorf("name is required")
	}

	n, err := m.store.CreateNote(args.Name, store.ScopeOf(args.Scope), args.Content)
	if err != nil {
		return nil, CreateNoteResult{}, err
	}

	return nil, CreateNoteResult{
		Note:    toInfo(n),
		Message: fmt.Sprintf("Created note '%s'", n.Label()),
	}, nil
}

func (m *MCPServer) deleteNote(ctx context.Context, req *mcp.CallToolRequest, args DeleteNoteArgs) (*mcp.CallToolResult, DeleteNoteResult, error) {
	n, err := m.resolve(args.Name, args.Scope)
	if err != nil {
		return nil, DeleteNoteResult{}, err
	}

	if err := m.store.RemoveNote(n); err != nil {
		return nil, DeleteNoteResult{}, err
	}
	pruned, err := m.store.PruneEmptyDirs()
	if err != nil {
		return nil, DeleteNoteResult{}, err
	}

	return nil, DeleteNoteResult{
		Note:    toInfo(n),
		Pruned:  pruned,
		Message: fmt.Sprintf("Deleted note '%s'", n.Label()),
	}, nil
}

// resolve finds a single note by name, narrowed to scope when given. There is
// no user to ask, so an ambiguous name is an error listing the candidates.
func (m *MCPServer) resolve(name, scope string) (store.Note, error) {
	if name == "" {
		return store.Note{}, fmt.Errorf("name is required")
	}

	notes, err := m.store.FindByName(name)
	if err != nil {
		return store.Note{}, err
	}

	if scope != "" {
		for _, n := range notes {
			if n.Scope == scope {
				return n, nil
			}
		}
		return store.Note{}, fmt.Errorf("%s in %s: %w", name, scope, store.ErrNotFound)
	}

	if len(notes) > 1 {
		labels := make([]string, len(notes))
		for i, n := range notes {
			labels[i] = n.Label()
		}
		return store.Note{}, fmt.Errorf("note '%s' exists in several scopes (%s); pass scope", name, strings.Join(labels, ", "))
	}
	return notes[0], nil
}

func toInfo(n store.Note) NoteInfo {
	return NoteInfo{Name: n.Name, Scope: n.Scope, Path: n.Path}
}

func toInfos(notes []store.Note) []NoteInfo {
	infos := make([]NoteInfo, len(notes))
	for i, n := range notes {
		infos[i] = toInfo(n)
	}
	return infos
}
