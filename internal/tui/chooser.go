package tui

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// labelItem is one chooser row; index points back into the caller's labels.
type labelItem struct {
	label string
	index int
}

func (i labelItem) FilterValue() string { return i.label }
func (i labelItem) Title() string       { return i.label }
func (i labelItem) Description() string { return "" }

// Chooser presents labels in a filterable list and reports the picked index.
type Chooser struct {
	Input  io.Reader
	Output io.Writer
}

// NewChooser returns a Chooser on the process's terminal.
func NewChooser() *Chooser {
	return &Chooser{Input: os.Stdin, Output: os.Stderr}
}

// Choose blocks until the user selects a row (ok=true) or cancels with
// esc, q or ctrl+c (ok=false).
func (c *Chooser) Choose(ctx context.Context, title string, labels []string) (int, bool, error) {
	if len(labels) == 0 {
		return -1, false, nil
	}

	p := tea.NewProgram(newChooserModel(title, labels),
		tea.WithContext(ctx),
		tea.WithInput(c.Input),
		tea.WithOutput(c.Output),
	)
	final, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return -1, false, ctxErr
		}
		if errors.Is(err, tea.ErrInterrupted) {
			return -1, false, nil
		}
		return -1, false, err
	}

	m, ok := final.(chooserModel)
	if !ok || m.chosen < 0 {
		return -1, false, nil
	}
	return m.chosen, true, nil
}

type chooserModel struct {
	list   list.Model
	chosen int
}

func newChooserModel(title string, labels []string) chooserModel {
	items := make([]list.Item, len(labels))
	for i, label := range labels {
		items[i] = labelItem{label: label, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetHeight(1)
	delegate.SetSpacing(0)

	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = title
	l.Styles.Title = titleStyle
	l.SetShowStatusBar(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	return chooserModel{list: l, chosen: -1}
}

func (m chooserModel) Init() tea.Cmd {
	return nil
}

func (m chooserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.chosen = -1
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			m.chosen = -1
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(labelItem); ok {
				m.chosen = item.index
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 1)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m chooserModel) View() string {
	return m.list.View()
}
