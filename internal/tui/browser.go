package tui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/vinayprograms/rnote/internal/store"
)

// CommandBuilder builds the editor process for a note path.
type CommandBuilder interface {
	Command(ctx context.Context, path string) (*exec.Cmd, error)
}

// Browser is a full-screen list of every note in the store. It reloads when
// files under the storage root change.
type Browser struct {
	store  *store.Store
	editor CommandBuilder
	logger *slog.Logger
}

// NewBrowser returns a Browser over s that edits notes with editor.
func NewBrowser(s *store.Store, editor CommandBuilder, logger *slog.Logger) *Browser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Browser{store: s, editor: editor, logger: logger}
}

// Run shows the browser until the user quits.
func (b *Browser) Run(ctx context.Context) error {
	watcher, err := setupWatcher(b.store.Root())
	if err != nil {
		b.logger.Debug("live refresh disabled", "error", err)
	}
	if watcher != nil {
		defer watcher.Close()
	}

	m := newBrowserModel(ctx, b.store, b.editor, watcher, b.logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrInterrupted) {
		return err
	}
	return nil
}

type noteItem struct {
	note  store.Note
	title string
	date  string
}

func (i noteItem) FilterValue() string { return i.note.Label() + " " + i.title }
func (i noteItem) Title() string       { return i.note.Label() }

func (i noteItem) Description() string {
	parts := make([]string, 0, 2)
	if i.title != "" && i.title != i.note.Name {
		parts = append(parts, i.title)
	}
	if i.date != "" {
		parts = append(parts, i.date)
	}
	return strings.Join(parts, " • ")
}

type fileChangedMsg struct{}

type editorFinishedMsg struct {
	note store.Note
	err  error
}

type browserModel struct {
	ctx     context.Context
	store   *store.Store
	editor  CommandBuilder
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	list    list.Model
	confirm *store.Note
	status  string
	err     error
}

func newBrowserModel(ctx context.Context, s *store.Store, editor CommandBuilder, watcher *fsnotify.Watcher, logger *slog.Logger) browserModel {
	if logger == nil {
		logger = slog.Default()
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(nil, delegate, defaultWidth, defaultHeight)
	l.Title = "rnote"
	l.Styles.Title = titleStyle
	l.KeyMap.Quit.SetKeys("q")
	l.KeyMap.ForceQuit.SetKeys("ctrl+c")
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		}
	}

	m := browserModel{
		ctx:     ctx,
		store:   s,
		editor:  editor,
		watcher: watcher,
		logger:  logger,
		list:    l,
	}
	m.reload()
	return m
}

// reload replaces the list items with the current contents of the store.
func (m *browserModel) reload() {
	notes, err := m.store.ListAll()
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		m.err = err
		return
	}

	items := make([]list.Item, len(notes))
	for i, n := range notes {
		item := noteItem{note: n}
		if data, err := m.store.Read(n); err == nil {
			if fm, _, ok := store.ParseFrontMatter(data); ok {
				item.title = fm.Title
				item.date = fm.Date
			}
		}
		items[i] = item
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("rnote (%d notes)", len(items))
}

func (m browserModel) Init() tea.Cmd {
	return waitForFileChange(m.watcher, m.logger)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			item, ok := m.list.SelectedItem().(noteItem)
			if !ok {
				return m, nil
			}
			return m, m.edit(item.note)
		case "d":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				n := item.note
				m.confirm = &n
			}
			return m, nil
		case "r":
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 2)

	case fileChangedMsg:
		m.reload()
		updateWatcher(m.watcher, m.store.Root())
		return m, waitForFileChange(m.watcher, m.logger)

	case editorFinishedMsg:
		if msg.err != nil {
			m.err = fmt.Errorf("%w: %w", store.ErrEditor, msg.err)
		} else {
			m.err = nil
			m.status = fmt.Sprintf("Edited %s", msg.note.Label())
		}
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browserModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		n := *m.confirm
		m.confirm = nil
		if err := m.store.RemoveNote(n); err != nil {
			m.err = err
			return m, nil
		}
		if _, err := m.store.PruneEmptyDirs(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.status = fmt.Sprintf("Deleted %s", n.Label())
		m.reload()
	case "n", "N", "esc", "q":
		m.confirm = nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

func (m browserModel) edit(n store.Note) tea.Cmd {
	c, err := m.editor.Command(m.ctx, n.Path)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{note: n, err: err} }
	}
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorFinishedMsg{note: n, err: err}
	})
}

func (m browserModel) View() string {
	if m.confirm != nil {
		body := fmt.Sprintf("%s\n\n %s\n\n%s",
			errorStyle.Bold(true).Render("Delete note?"),
			m.confirm.Label(),
			helpStyle.Render("y: delete • n/esc: cancel"))
		return dialogStyle.Render(body)
	}

	var footer string
	switch {
	case m.err != nil:
		footer = errorStyle.Render("error: " + m.err.Error())
	case m.status != "":
		footer = statusStyle.Render(m.status)
	}
	return m.list.View() + "\n" + footer
}

func waitForFileChange(watcher *fsnotify.Watcher, logger *slog.Logger) tea.Cmd {
	return func() tea.Msg {
		if watcher == nil {
			return nil
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					return fileChangedMsg{}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				logger.Warn("watcher error", "error", err)
			}
		}
	}
}

func setupWatcher(root string) (*fsnotify.Watcher, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	updateWatcher(watcher, root)
	return watcher, nil
}

// updateWatcher adds the root and every scope directory below it. fsnotify
// is not recursive and ignores paths it already watches.
func updateWatcher(watcher *fsnotify.Watcher, root string) {
	if watcher == nil {
		return
	}

	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.IsDir() {
			watcher.Add(path)
		}
		return nil
	})
}
